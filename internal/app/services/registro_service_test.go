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
	"github.com/davidrv/permanencia/internal/pkg/validation"
)

type fakeRegistroStore struct {
	tabla   string
	records map[uuid.UUID]models.FieldMap
	creates int
}

func newFakeRegistroStore(tabla string) *fakeRegistroStore {
	return &fakeRegistroStore{tabla: tabla, records: map[uuid.UUID]models.FieldMap{}}
}

func (f *fakeRegistroStore) Tabla() string { return f.tabla }

func (f *fakeRegistroStore) GetAll(_ context.Context) ([]models.FieldMap, error) {
	out := make([]models.FieldMap, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRegistroStore) GetAllConEstudiante(ctx context.Context) ([]models.FieldMap, error) {
	return f.GetAll(ctx)
}

func (f *fakeRegistroStore) GetByID(_ context.Context, id uuid.UUID) (models.FieldMap, error) {
	if r, ok := f.records[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrRegistroNotFound
}

func (f *fakeRegistroStore) GetByEstudiante(_ context.Context, estudianteID uuid.UUID) ([]models.FieldMap, error) {
	var out []models.FieldMap
	for _, r := range f.records {
		if r.Get("estudiante_id") == estudianteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistroStore) Create(_ context.Context, fields models.FieldMap) (models.FieldMap, error) {
	f.creates++
	id := uuid.New()
	stored := fields.Copy()
	stored["id"] = id.String()
	f.records[id] = stored
	return stored, nil
}

func (f *fakeRegistroStore) Update(_ context.Context, id uuid.UUID, fields models.FieldMap) (models.FieldMap, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrRegistroNotFound
	}
	for k, v := range fields {
		record[k] = v
	}
	return record, nil
}

func (f *fakeRegistroStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.records[id]; !ok {
		return false, nil
	}
	delete(f.records, id)
	return true, nil
}

func camposTutoria() models.FieldMap {
	fields := camposAtencion()
	fields["nivel_riesgo"] = "Medio"
	fields["requiere_tutoria"] = true
	fields["fecha_asignacion"] = "2025-02-10"
	return fields
}

func camposRemision() models.FieldMap {
	return models.FieldMap{
		"nombre_estudiante":  "Laura Mendoza",
		"numero_documento":   "1065432100",
		"programa_academico": "INGENIERÍA DE SISTEMAS",
		"semestre":           "4",
		"motivo_remision":    "Estrés académico sostenido",
		"docente_remite":     "Carlos Pérez",
		"correo_docente":     "carlos.perez@unicesar.edu.co",
		"telefono_docente":   "3016549870",
		"fecha":              "2025-02-10",
		"hora":               "10:30",
		"tipo_remision":      "Individual",
	}
}

func TestCrearAtencionResuelveEstudiante(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("tutorias_academicas")
	svc := NewRegistroAtencionService(registros, NewEstudianteService(estudiantes), validation.ReglasTutoria)

	created, err := svc.Crear(context.Background(), camposTutoria())

	require.NoError(t, err)
	require.Len(t, estudiantes.byID, 1, "the unknown student is registered on first contact")
	estudianteID := created.Get("estudiante_id").(uuid.UUID)
	e, err := estudiantes.GetByID(context.Background(), estudianteID)
	require.NoError(t, err)
	assert.Equal(t, "1065432100", e.Documento)
	assert.Equal(t, 1, registros.creates)
}

func TestCrearAtencionReutilizaEstudianteExistente(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("tutorias_academicas")
	svc := NewRegistroAtencionService(registros, NewEstudianteService(estudiantes), validation.ReglasTutoria)

	_, err := svc.Crear(context.Background(), camposTutoria())
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), camposTutoria())
	require.NoError(t, err)

	assert.Len(t, estudiantes.byID, 1, "both records link to the same student")
	assert.Equal(t, 2, registros.creates)
}

func TestCrearInvalidoNoEscribeNada(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("tutorias_academicas")
	svc := NewRegistroAtencionService(registros, NewEstudianteService(estudiantes), validation.ReglasTutoria)

	fields := camposTutoria()
	fields["telefono"] = "12345"
	_, err := svc.Crear(context.Background(), fields)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "telefono")
	assert.Zero(t, registros.creates, "no record row on validation failure")
	assert.Empty(t, estudiantes.byID, "no student row on validation failure")
}

func TestCrearReferenciaSinEstudianteConocido(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("remisiones_psicologicas")
	svc := NewRegistroReferenciaService(registros, NewEstudianteService(estudiantes), validation.ReglasRemision)

	created, err := svc.Crear(context.Background(), camposRemision())

	require.NoError(t, err)
	assert.NotContains(t, created, "estudiante_id", "unknown students are not registered by reference flows")
	assert.Empty(t, estudiantes.byID)
	assert.Equal(t, 1, registros.creates, "the record is kept anyway")
}

func TestCrearReferenciaVinculaEstudianteConocido(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	known := &models.Estudiante{Documento: "1065432100", Nombres: "Laura", Apellidos: "Mendoza"}
	knownID, err := estudiantes.Create(context.Background(), known)
	require.NoError(t, err)

	registros := newFakeRegistroStore("remisiones_psicologicas")
	svc := NewRegistroReferenciaService(registros, NewEstudianteService(estudiantes), validation.ReglasRemision)

	created, err := svc.Crear(context.Background(), camposRemision())

	require.NoError(t, err)
	assert.Equal(t, knownID, created.Get("estudiante_id"))
}

func TestActualizarValidaSoloCamposPresentes(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("tutorias_academicas")
	svc := NewRegistroAtencionService(registros, NewEstudianteService(estudiantes), validation.ReglasTutoria)

	created, err := svc.Crear(context.Background(), camposTutoria())
	require.NoError(t, err)
	id, err := uuid.Parse(created.GetString("id"))
	require.NoError(t, err)

	updated, err := svc.Actualizar(context.Background(), id, models.FieldMap{"nivel_riesgo": "Alto"})
	require.NoError(t, err)
	assert.Equal(t, "Alto", updated.Get("nivel_riesgo"))

	_, err = svc.Actualizar(context.Background(), id, models.FieldMap{"fecha_asignacion": "mañana"})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "fecha_asignacion")
}

func TestEliminarRegistroInexistente(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("tutorias_academicas")
	svc := NewRegistroAtencionService(registros, NewEstudianteService(estudiantes), validation.ReglasTutoria)

	err := svc.Eliminar(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestPorEstudianteVerificaExistencia(t *testing.T) {
	estudiantes := newFakeEstudianteStore()
	registros := newFakeRegistroStore("tutorias_academicas")
	svc := NewRegistroAtencionService(registros, NewEstudianteService(estudiantes), validation.ReglasTutoria)

	_, err := svc.PorEstudiante(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
