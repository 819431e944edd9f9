package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/payrecon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	other := errors.New("connection refused")
	tests := []struct {
		name  string
		input error
		want  error
	}{
		{"nil", nil, nil},
		{"duplicate key", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"wrapped duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), domain.ErrAlreadyExists},
		{"joined not found", errors.Join(errors.New("outer"), gorm.ErrRecordNotFound), domain.ErrNotFound},
		{"unmapped", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapGormErrorToDomain(tt.input)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrRecordNotFound }), domain.ErrNotFound)
	assert.Panics(t, func() {
		_ = WrapError(func() error { panic("boom") })
	})
}
