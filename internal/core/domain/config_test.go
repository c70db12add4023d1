package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tether/internal/core/domain"
)

func TestConfig_LocalReference(t *testing.T) {
	cfg := &domain.Config{
		LibraryRoot: "/work/widgets",
		DistDir:     "/work/widgets/dist",
	}

	// Sibling project resolves to a relative reference.
	assert.Equal(t, "file:../widgets/dist", cfg.LocalReference("/work/app"))

	// Nested project roots still resolve relative to the project.
	assert.Equal(t, "file:../../widgets/dist", cfg.LocalReference("/work/apps/site"))
}
