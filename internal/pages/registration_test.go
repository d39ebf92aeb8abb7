package pages_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opencartqa/internal/suite"
	"opencartqa/internal/testdata"
)

// randomEmail makes registration repeatable: the store rejects duplicate
// accounts, so every run needs fresh addresses.
func randomEmail() string {
	return fmt.Sprintf("tester%s@gmail.com", strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func TestRegistration(t *testing.T) {
	s := suite.New(t)

	records, err := testdata.ReadRegistrationCSV(s.Cfg.Resolve(s.Cfg.TestData.UserRegistration))
	require.NoError(t, err)
	require.NotEmpty(t, records)

	rp := s.RegistrationPage(t)
	ctx := context.Background()

	for _, rec := range records {
		rec := rec
		t.Run(rec.FirstName, func(t *testing.T) {
			ok, err := rp.Register(ctx, rec, randomEmail())
			require.NoError(t, err)
			assert.True(t, ok, "registration not confirmed for %s %s", rec.FirstName, rec.LastName)
		})
	}
}
