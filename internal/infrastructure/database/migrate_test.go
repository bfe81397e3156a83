package database

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	ratingentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/rating/entities"
	subentities "github.com/muhammadrizo00/Kinamax-Pro/internal/domain/subscription/entities"
)

// The AutoMigrate fallback must produce the same cascading foreign keys
// the SQL migrations declare, otherwise deleting a movie or user would
// leave orphan rows behind.
func TestAutoMigrateModelsCarryCascadeConstraints(t *testing.T) {
	tests := []struct {
		name      string
		model     any
		relations []string
	}{
		{"rating", &ratingentities.Rating{}, []string{"User", "Movie"}},
		{"subscription", &subentities.Subscription{}, []string{"User", "Channel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)

			for _, name := range tt.relations {
				rel, ok := s.Relationships.Relations[name]
				require.True(t, ok, "relation %s not declared", name)

				constraint := rel.ParseConstraint()
				require.NotNil(t, constraint, "relation %s has no constraint", name)
				require.Equal(t, "CASCADE", constraint.OnDelete)
			}
		})
	}
}
