package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/app/models/dto"
	"github.com/davidrv/permanencia/internal/app/services"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
	"github.com/davidrv/permanencia/internal/pkg/validation"
)

type memEstudianteStore struct {
	byID map[uuid.UUID]*models.Estudiante
}

func (m *memEstudianteStore) Create(_ context.Context, e *models.Estudiante) (uuid.UUID, error) {
	stored := *e
	stored.ID = uuid.New()
	m.byID[stored.ID] = &stored
	return stored.ID, nil
}

func (m *memEstudianteStore) GetByID(_ context.Context, id uuid.UUID) (*models.Estudiante, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrEstudianteNotFound
}

func (m *memEstudianteStore) GetByDocumento(_ context.Context, documento string) (*models.Estudiante, error) {
	for _, e := range m.byID {
		if e.Documento == documento {
			return e, nil
		}
	}
	return nil, apperrors.ErrEstudianteNotFound
}

func (m *memEstudianteStore) GetAll(_ context.Context) ([]*models.Estudiante, error) {
	return nil, nil
}

func (m *memEstudianteStore) GetByPrograma(_ context.Context, _ string) ([]*models.Estudiante, error) {
	return nil, nil
}

func (m *memEstudianteStore) Update(_ context.Context, _ *models.Estudiante) error { return nil }
func (m *memEstudianteStore) Delete(_ context.Context, _ uuid.UUID) error          { return nil }

type memRegistroStore struct {
	byID map[uuid.UUID]models.FieldMap
}

func (m *memRegistroStore) Tabla() string { return "tutorias_academicas" }

func (m *memRegistroStore) GetAll(_ context.Context) ([]models.FieldMap, error) {
	out := make([]models.FieldMap, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	return out, nil
}

func (m *memRegistroStore) GetAllConEstudiante(ctx context.Context) ([]models.FieldMap, error) {
	return m.GetAll(ctx)
}

func (m *memRegistroStore) GetByID(_ context.Context, id uuid.UUID) (models.FieldMap, error) {
	if r, ok := m.byID[id]; ok {
		return r, nil
	}
	return nil, apperrors.ErrRegistroNotFound
}

func (m *memRegistroStore) GetByEstudiante(_ context.Context, _ uuid.UUID) ([]models.FieldMap, error) {
	return nil, nil
}

func (m *memRegistroStore) Create(_ context.Context, fields models.FieldMap) (models.FieldMap, error) {
	id := uuid.New()
	stored := fields.Copy()
	stored["id"] = id.String()
	m.byID[id] = stored
	return stored, nil
}

func (m *memRegistroStore) Update(_ context.Context, id uuid.UUID, fields models.FieldMap) (models.FieldMap, error) {
	record, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrRegistroNotFound
	}
	for k, v := range fields {
		record[k] = v
	}
	return record, nil
}

func (m *memRegistroStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func setupTutoriasRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	estudiantes := services.NewEstudianteService(&memEstudianteStore{byID: map[uuid.UUID]*models.Estudiante{}})
	svc := services.NewRegistroAtencionService(&memRegistroStore{byID: map[uuid.UUID]models.FieldMap{}}, estudiantes, validation.ReglasTutoria)
	ctrl := NewRegistroController(svc, "tutoría académica")

	router := gin.New()
	group := router.Group("/api/v1/tutorias-academicas")
	group.GET("", ctrl.GetAll)
	group.GET("/:id", ctrl.GetByID)
	group.POST("", ctrl.Create)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func tutoriaPayload() map[string]any {
	return map[string]any{
		"numero_documento":   "1065432100",
		"tipo_documento":     "CC",
		"nombres":            "Laura Sofía",
		"apellidos":          "Mendoza Rojas",
		"correo":             "laura.mendoza@unicesar.edu.co",
		"programa_academico": "INGENIERÍA DE SISTEMAS",
		"semestre":           4,
		"estrato":            2,
		"nivel_riesgo":       "Medio",
		"requiere_tutoria":   true,
		"fecha_asignacion":   "2025-02-10",
	}
}

func TestCreateTutoriaEnvelope(t *testing.T) {
	router := setupTutoriasRouter()

	rec := postJSON(router, "/api/v1/tutorias-academicas", tutoriaPayload())

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Registro de tutoría académica creado exitosamente", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestCreateTutoriaInvalidaDevuelveErroresPorCampo(t *testing.T) {
	router := setupTutoriasRouter()

	payload := tutoriaPayload()
	payload["correo"] = "no-es-correo"
	payload["fecha_asignacion"] = "10/02/2025"
	rec := postJSON(router, "/api/v1/tutorias-academicas", payload)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Datos inválidos", resp.Error)
	assert.Contains(t, resp.Errors, "correo")
	assert.Contains(t, resp.Errors, "fecha_asignacion")
}

func TestCreateTutoriaCuerpoNoJSON(t *testing.T) {
	router := setupTutoriasRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tutorias-academicas", bytes.NewReader([]byte("no soy json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "El cuerpo de la solicitud no es un JSON válido", resp.Message)
}

func TestGetTutoriaIDInvalido(t *testing.T) {
	router := setupTutoriasRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutorias-academicas/no-es-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "El ID debe ser un UUID válido", resp.Message)
}

func TestGetTutoriaInexistente(t *testing.T) {
	router := setupTutoriasRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutorias-academicas/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
