package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Al registrar una transportadora sin is_active explícito, queda activa.
func TestCourierCreate_IsActivePorDefecto(t *testing.T) {
	repo := newMemCourierRepo()
	uc := NewCourierUseCase(repo)

	out, err := uc.Create(dto.CreateCourierRequest{Name: "Envíos Andinos"})
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestCourierCreate_IsActiveExplicito(t *testing.T) {
	uc := NewCourierUseCase(newMemCourierRepo())

	inactive := false
	out, err := uc.Create(dto.CreateCourierRequest{Name: "Envíos Andinos", IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestCourierCreate_SinNombre(t *testing.T) {
	uc := NewCourierUseCase(newMemCourierRepo())

	_, err := uc.Create(dto.CreateCourierRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ListActive filtra las desactivadas: son las únicas elegibles al despachar.
func TestCourierListActive_FiltraInactivas(t *testing.T) {
	repo := newMemCourierRepo(
		&entity.Courier{ID: "c1", Name: "Activa", IsActive: true},
		&entity.Courier{ID: "c2", Name: "Inactiva", IsActive: false},
	)
	uc := NewCourierUseCase(repo)

	out, err := uc.ListActive()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Activa", out[0].Name)
}

// Desactivar vía Update la saca del listado de activas sin borrarla.
func TestCourierUpdate_Desactivar(t *testing.T) {
	repo := newMemCourierRepo(&entity.Courier{ID: "c1", Name: "Activa", IsActive: true})
	uc := NewCourierUseCase(repo)

	inactive := false
	out, err := uc.Update("c1", dto.UpdateCourierRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	active, err := uc.ListActive()
	require.NoError(t, err)
	assert.Empty(t, active)

	still, err := uc.GetByID("c1")
	require.NoError(t, err)
	assert.NotNil(t, still, "desactivar no borra el registro")
}
