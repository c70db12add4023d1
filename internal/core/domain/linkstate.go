package domain

// Section identifies which manifest mapping holds the dependency declaration.
// A library is declared in exactly one section at a time.
type Section string

const (
	// SectionDependencies is the direct dependency mapping.
	SectionDependencies Section = "dependencies"

	// SectionDevDependencies is the development dependency mapping.
	SectionDevDependencies Section = "devDependencies"
)

// Sections lists the recognized manifest sections in lookup order.
// Direct dependencies shadow development dependencies.
func Sections() []Section {
	return []Section{SectionDependencies, SectionDevDependencies}
}

// LockSnapshot maps a lock artifact file name to its raw contents at capture
// time. A project may have zero, one, or several lock artifacts; every artifact
// that exists must be captured before any mutation.
type LockSnapshot map[string][]byte

// LinkState is the reversal record for one project. It is created by state
// capture before any mutation, owned by the session for the lifetime of the
// run, and consumed at most once during restoration.
type LinkState struct {
	Project CandidateProject

	// OriginalSpecifier is the version specifier found at capture time.
	// Restoration writes this exact value back into OriginalSection.
	OriginalSpecifier string

	// OriginalSection is the manifest section the specifier was found in.
	OriginalSection Section

	// WasAlreadyLocal is true when the specifier already denoted a local
	// filesystem reference. Such projects are never mutated and are exempt
	// from restoration.
	WasAlreadyLocal bool

	// Locks holds the captured lock artifacts.
	Locks LockSnapshot

	// ManifestDigest is the xxhash digest of the manifest contents at capture
	// time.
	ManifestDigest uint64

	// LinkedDigest is the digest of the manifest right after the link rewrite.
	// A differing digest at restore time means the manifest was edited while
	// linked; restoration then touches only the dependency entry.
	LinkedDigest uint64

	// InstallDegraded is set when the link-time install command failed after
	// the manifest was already mutated. The project still requires restoration.
	InstallDegraded bool
}
