package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
)

// fakeEstudianteStore keeps students in memory and enforces the documento
// uniqueness the real table guarantees.
type fakeEstudianteStore struct {
	byID    map[uuid.UUID]*models.Estudiante
	creates int
}

func newFakeEstudianteStore() *fakeEstudianteStore {
	return &fakeEstudianteStore{byID: map[uuid.UUID]*models.Estudiante{}}
}

func (f *fakeEstudianteStore) Create(_ context.Context, e *models.Estudiante) (uuid.UUID, error) {
	f.creates++
	for _, existing := range f.byID {
		if existing.Documento == e.Documento {
			return uuid.Nil, apperrors.ErrDocumentoAlreadyUsed
		}
	}
	stored := *e
	stored.ID = uuid.New()
	f.byID[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeEstudianteStore) GetByID(_ context.Context, id uuid.UUID) (*models.Estudiante, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrEstudianteNotFound
}

func (f *fakeEstudianteStore) GetByDocumento(_ context.Context, documento string) (*models.Estudiante, error) {
	for _, e := range f.byID {
		if e.Documento == documento {
			return e, nil
		}
	}
	return nil, apperrors.ErrEstudianteNotFound
}

func (f *fakeEstudianteStore) GetAll(_ context.Context) ([]*models.Estudiante, error) {
	out := make([]*models.Estudiante, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEstudianteStore) GetByPrograma(_ context.Context, programa string) ([]*models.Estudiante, error) {
	var out []*models.Estudiante
	for _, e := range f.byID {
		if e.ProgramaAcademico == programa {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEstudianteStore) Update(_ context.Context, e *models.Estudiante) error {
	if _, ok := f.byID[e.ID]; !ok {
		return apperrors.ErrEstudianteNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEstudianteStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrEstudianteNotFound
	}
	delete(f.byID, id)
	return nil
}

func camposAtencion() models.FieldMap {
	return models.FieldMap{
		"numero_documento":   "1065432100",
		"tipo_documento":     "CC",
		"nombres":            "Laura Sofía",
		"apellidos":          "Mendoza Rojas",
		"correo":             "laura.mendoza@unicesar.edu.co",
		"programa_academico": "INGENIERÍA DE SISTEMAS",
		"semestre":           float64(4),
		"estrato":            float64(2),
	}
}

func TestResolverCreaEstudianteNuevo(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	id, err := svc.Resolver(context.Background(), camposAtencion())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	created, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "1065432100", created.Documento)
	assert.Equal(t, 4, created.Semestre)
}

func TestResolverEsIdempotente(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	first, err := svc.Resolver(context.Background(), camposAtencion())
	require.NoError(t, err)
	second, err := svc.Resolver(context.Background(), camposAtencion())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.creates, "the second resolution must not insert again")
}

func TestResolverNoReconciliaDatosExistentes(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	id, err := svc.Resolver(context.Background(), camposAtencion())
	require.NoError(t, err)

	cambiado := camposAtencion()
	cambiado["nombres"] = "Otro Nombre"
	cambiado["semestre"] = float64(9)
	again, err := svc.Resolver(context.Background(), cambiado)
	require.NoError(t, err)

	assert.Equal(t, id, again)
	e, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Laura Sofía", e.Nombres, "existing student data wins")
	assert.Equal(t, 4, e.Semestre)
}

func TestResolverSinDocumento(t *testing.T) {
	svc := NewEstudianteService(newFakeEstudianteStore())

	fields := camposAtencion()
	delete(fields, "numero_documento")
	_, err := svc.Resolver(context.Background(), fields)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "numero_documento")
}

func TestResolverRequiereIdentidadCompleta(t *testing.T) {
	for _, campo := range []string{"tipo_documento", "nombres", "apellidos", "correo", "programa_academico", "semestre"} {
		t.Run(campo, func(t *testing.T) {
			store := newFakeEstudianteStore()
			svc := NewEstudianteService(store)

			fields := camposAtencion()
			delete(fields, campo)
			_, err := svc.Resolver(context.Background(), fields)

			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, campo)
			assert.Empty(t, store.byID, "nothing is written when the identity is incomplete")
		})
	}
}

func TestResolverExigeIdentidadAunConEstudianteExistente(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	_, err := svc.Resolver(context.Background(), camposAtencion())
	require.NoError(t, err)

	fields := camposAtencion()
	delete(fields, "correo")
	delete(fields, "nombres")
	_, err = svc.Resolver(context.Background(), fields)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr, "an incomplete payload fails even when the student is already registered")
}

func TestResolverNoInventaValoresPorDefecto(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	fields := camposAtencion()
	fields["tipo_documento"] = "TI"
	fields["semestre"] = float64(7)
	id, err := svc.Resolver(context.Background(), fields)
	require.NoError(t, err)

	e, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "TI", e.TipoDocumento)
	assert.Equal(t, 7, e.Semestre)
}

func TestResolverGanaLaFilaConcurrente(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	// Pre-register the student directly, as a concurrent request would.
	winner := &models.Estudiante{Documento: "1065432100", Nombres: "Laura", Apellidos: "Mendoza"}
	winnerID, err := store.Create(context.Background(), winner)
	require.NoError(t, err)

	id, err := svc.Resolver(context.Background(), camposAtencion())
	require.NoError(t, err)
	assert.Equal(t, winnerID, id)
}

func TestCreateEstudianteRechazaCamposInvalidos(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	fields := models.FieldMap{
		"documento": "123",
		"correo":    "no-es-correo",
	}
	_, err := svc.CreateEstudiante(context.Background(), fields)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "documento")
	assert.Contains(t, vErr.Fields, "correo")
	assert.Zero(t, store.creates)
}

func TestUpdateEstudianteParcial(t *testing.T) {
	store := newFakeEstudianteStore()
	svc := NewEstudianteService(store)

	fields := camposAtencion()
	fields["documento"] = fields["numero_documento"]
	delete(fields, "numero_documento")
	created, err := svc.CreateEstudiante(context.Background(), fields)
	require.NoError(t, err)

	updated, err := svc.UpdateEstudiante(context.Background(), created.ID, models.FieldMap{"semestre": "6"})
	require.NoError(t, err)

	assert.Equal(t, 6, updated.Semestre)
	assert.Equal(t, "Laura Sofía", updated.Nombres, "omitted fields stay untouched")
}

func TestUpdateEstudianteInexistente(t *testing.T) {
	svc := NewEstudianteService(newFakeEstudianteStore())

	_, err := svc.UpdateEstudiante(context.Background(), uuid.New(), models.FieldMap{"semestre": float64(2)})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
