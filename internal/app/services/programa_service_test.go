package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
)

type fakeProgramaStore struct {
	byID map[uuid.UUID]*models.Programa
}

func newFakeProgramaStore() *fakeProgramaStore {
	return &fakeProgramaStore{byID: map[uuid.UUID]*models.Programa{}}
}

func (f *fakeProgramaStore) Create(_ context.Context, p *models.Programa) (uuid.UUID, error) {
	stored := *p
	stored.ID = uuid.New()
	f.byID[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeProgramaStore) GetByID(_ context.Context, id uuid.UUID) (*models.Programa, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, apperrors.ErrProgramaNotFound
}

func (f *fakeProgramaStore) GetByCodigo(_ context.Context, codigo string) (*models.Programa, error) {
	for _, p := range f.byID {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, apperrors.ErrProgramaNotFound
}

func (f *fakeProgramaStore) GetAll(_ context.Context) ([]*models.Programa, error) {
	out := make([]*models.Programa, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProgramaStore) GetByFacultad(_ context.Context, facultad string) ([]*models.Programa, error) {
	var out []*models.Programa
	for _, p := range f.byID {
		if p.Facultad == facultad {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramaStore) GetByNivel(_ context.Context, nivel string) ([]*models.Programa, error) {
	var out []*models.Programa
	for _, p := range f.byID {
		if p.Nivel == nivel {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramaStore) GetActivos(_ context.Context) ([]*models.Programa, error) {
	var out []*models.Programa
	for _, p := range f.byID {
		if p.Estado == "Activo" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProgramaStore) Update(_ context.Context, p *models.Programa) error {
	if _, ok := f.byID[p.ID]; !ok {
		return apperrors.ErrProgramaNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProgramaStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrProgramaNotFound
	}
	delete(f.byID, id)
	return nil
}

func camposPrograma() models.FieldMap {
	return models.FieldMap{
		"codigo":   "ISI-001",
		"nombre":   "Ingeniería de Sistemas",
		"facultad": "Facultad ingenierías y tecnologías",
	}
}

func TestCreateProgramaAplicaDefaults(t *testing.T) {
	svc := NewProgramaService(newFakeProgramaStore())

	p, err := svc.CreatePrograma(context.Background(), camposPrograma())

	require.NoError(t, err)
	assert.Equal(t, "Pregrado", p.Nivel)
	assert.Equal(t, "Presencial", p.Modalidad)
	assert.Equal(t, "Activo", p.Estado)
}

func TestCreateProgramaCodigoDuplicado(t *testing.T) {
	svc := NewProgramaService(newFakeProgramaStore())

	_, err := svc.CreatePrograma(context.Background(), camposPrograma())
	require.NoError(t, err)

	otro := camposPrograma()
	otro["nombre"] = "Otro Programa"
	_, err = svc.CreatePrograma(context.Background(), otro)
	assert.ErrorIs(t, err, apperrors.ErrCodigoAlreadyUsed)
}

func TestUpdateProgramaCambioDeCodigoDuplicado(t *testing.T) {
	svc := NewProgramaService(newFakeProgramaStore())

	first, err := svc.CreatePrograma(context.Background(), camposPrograma())
	require.NoError(t, err)

	otro := camposPrograma()
	otro["codigo"] = "DER-002"
	otro["nombre"] = "Derecho"
	otro["facultad"] = "Facultad de derecho, ciencias políticas y sociales"
	second, err := svc.CreatePrograma(context.Background(), otro)
	require.NoError(t, err)

	_, err = svc.UpdatePrograma(context.Background(), second.ID, models.FieldMap{"codigo": first.Codigo})
	assert.ErrorIs(t, err, apperrors.ErrCodigoAlreadyUsed)

	// Re-sending the program's own codigo is not a conflict.
	updated, err := svc.UpdatePrograma(context.Background(), second.ID, models.FieldMap{"codigo": "DER-002", "modalidad": "Virtual"})
	require.NoError(t, err)
	assert.Equal(t, "Virtual", updated.Modalidad)
}

func TestCreateProgramaInvalido(t *testing.T) {
	svc := NewProgramaService(newFakeProgramaStore())

	_, err := svc.CreatePrograma(context.Background(), models.FieldMap{
		"codigo":   "isi1",
		"nombre":   "IS",
		"facultad": "Inexistente",
	})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "codigo")
	assert.Contains(t, vErr.Fields, "nombre")
	assert.Contains(t, vErr.Fields, "facultad")
}
