package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/davidrv/permanencia/internal/app/models"
	"github.com/davidrv/permanencia/internal/pkg/apperrors"
	"github.com/davidrv/permanencia/internal/pkg/logger"
)

// RegistroRepository is the generic persistence adapter for the permanencia
// service-record tables. One instance per table; rows travel as FieldMap,
// since these entities enter and leave the system as untyped field maps and
// the rulesets already performed the schema role.
type RegistroRepository struct {
	db    *pgxpool.Pool
	sb    squirrel.StatementBuilderType
	tabla models.TablaRegistro
}

// NewRegistroRepository creates an adapter bound to one table descriptor.
func NewRegistroRepository(db *pgxpool.Pool, tabla models.TablaRegistro) *RegistroRepository {
	return &RegistroRepository{
		db:    db,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		tabla: tabla,
	}
}

// Tabla returns the table name this adapter is bound to.
func (r *RegistroRepository) Tabla() string {
	return r.tabla.Nombre
}

// normalizeValue converts pgx scan values into JSON-friendly forms. pgx
// returns uuid columns as raw 16-byte arrays.
func normalizeValue(v any) any {
	if b, ok := v.([16]byte); ok {
		return uuid.UUID(b).String()
	}
	return v
}

// collectRows turns a pgx result set into field maps keyed by column name.
func collectRows(rows pgx.Rows) ([]models.FieldMap, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := []models.FieldMap{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("error reading row values: %w", err)
		}
		record := make(models.FieldMap, len(fields))
		for i, fd := range fields {
			record[fd.Name] = normalizeValue(values[i])
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// GetAll returns every record of the table, newest first.
func (r *RegistroRepository) GetAll(ctx context.Context) ([]models.FieldMap, error) {
	sql, args, err := r.sb.Select("*").
		From(r.tabla.Nombre).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all %s query: %w", r.tabla.Nombre, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tabla", r.tabla.Nombre).Msg("Error executing get all query")
		return nil, fmt.Errorf("error querying %s: %w", r.tabla.Nombre, err)
	}
	return collectRows(rows)
}

// GetByID returns one record, or ErrRegistroNotFound.
func (r *RegistroRepository) GetByID(ctx context.Context, id uuid.UUID) (models.FieldMap, error) {
	sql, args, err := r.sb.Select("*").
		From(r.tabla.Nombre).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s by id query: %w", r.tabla.Nombre, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tabla", r.tabla.Nombre).Msg("Error executing get by id query")
		return nil, fmt.Errorf("error querying %s: %w", r.tabla.Nombre, err)
	}
	records, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrRegistroNotFound
	}
	return records[0], nil
}

// GetByEstudiante returns the records referencing one student.
func (r *RegistroRepository) GetByEstudiante(ctx context.Context, estudianteID uuid.UUID) ([]models.FieldMap, error) {
	sql, args, err := r.sb.Select("*").
		From(r.tabla.Nombre).
		Where(squirrel.Eq{"estudiante_id": estudianteID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s by estudiante query: %w", r.tabla.Nombre, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", r.tabla.Nombre, err)
	}
	return collectRows(rows)
}

// GetAllConEstudiante returns every record with the referenced student
// embedded under an "estudiante" key. Records without a student reference
// carry a nil entry.
func (r *RegistroRepository) GetAllConEstudiante(ctx context.Context) ([]models.FieldMap, error) {
	records, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(records))
	seen := map[string]bool{}
	for _, rec := range records {
		id, ok := rec["estudiante_id"].(string)
		if !ok || id == "" || seen[id] {
			continue
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		seen[id] = true
		ids = append(ids, parsed)
	}

	estudiantes := map[string]models.FieldMap{}
	if len(ids) > 0 {
		sql, args, err := r.sb.Select("id", "documento", "tipo_documento", "nombres", "apellidos", "correo", "telefono", "programa_academico", "semestre").
			From("estudiantes").
			Where(squirrel.Eq{"id": ids}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build estudiantes lookup query: %w", err)
		}
		rows, err := r.db.Query(ctx, sql, args...)
		if err != nil {
			return nil, fmt.Errorf("error querying estudiantes: %w", err)
		}
		found, err := collectRows(rows)
		if err != nil {
			return nil, err
		}
		for _, e := range found {
			if id, ok := e["id"].(string); ok {
				estudiantes[id] = e
			}
		}
	}

	for _, rec := range records {
		if id, ok := rec["estudiante_id"].(string); ok {
			if e, found := estudiantes[id]; found {
				rec["estudiante"] = e
				continue
			}
		}
		rec["estudiante"] = nil
	}
	return records, nil
}

// Create inserts a record built from the writable subset of fields, stamping
// created_at/updated_at when absent, and returns the inserted row. An empty
// map is returned when the store reports nothing back.
func (r *RegistroRepository) Create(ctx context.Context, fields models.FieldMap) (models.FieldMap, error) {
	row := make(map[string]interface{}, len(r.tabla.Columnas)+2)
	for _, col := range r.tabla.Columnas {
		if v, ok := fields[col]; ok {
			row[col] = v
		}
	}
	now := time.Now()
	if _, ok := fields["created_at"]; !ok {
		row["created_at"] = now
	} else {
		row["created_at"] = fields["created_at"]
	}
	if _, ok := fields["updated_at"]; !ok {
		row["updated_at"] = now
	} else {
		row["updated_at"] = fields["updated_at"]
	}

	sql, args, err := r.sb.Insert(r.tabla.Nombre).
		SetMap(row).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert %s query: %w", r.tabla.Nombre, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tabla", r.tabla.Nombre).Msg("Error executing insert query")
		return nil, fmt.Errorf("error inserting into %s: %w", r.tabla.Nombre, err)
	}
	records, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return models.FieldMap{}, nil
	}
	return records[0], nil
}

// Update overwrites the writable subset of fields present in the map and
// always refreshes updated_at. Returns the updated row.
func (r *RegistroRepository) Update(ctx context.Context, id uuid.UUID, fields models.FieldMap) (models.FieldMap, error) {
	row := map[string]interface{}{}
	for _, col := range r.tabla.Columnas {
		if v, ok := fields[col]; ok {
			row[col] = v
		}
	}
	row["updated_at"] = time.Now()

	sql, args, err := r.sb.Update(r.tabla.Nombre).
		SetMap(row).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update %s query: %w", r.tabla.Nombre, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tabla", r.tabla.Nombre).Msg("Error executing update query")
		return nil, fmt.Errorf("error updating %s: %w", r.tabla.Nombre, err)
	}
	records, err := collectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrRegistroNotFound
	}
	return records[0], nil
}

// Delete removes a record. True iff the store reports a row affected.
func (r *RegistroRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	sql, args, err := r.sb.Delete(r.tabla.Nombre).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete %s query: %w", r.tabla.Nombre, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("tabla", r.tabla.Nombre).Msg("Error executing delete query")
		return false, fmt.Errorf("error deleting from %s: %w", r.tabla.Nombre, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// CountByField returns the number of rows per distinct value of one column.
// The statistics dashboard uses it for the risk level distribution.
func (r *RegistroRepository) CountByField(ctx context.Context, field string) (map[string]int64, error) {
	sql, args, err := r.sb.Select(field, "COUNT(*)").
		From(r.tabla.Nombre).
		Where(squirrel.NotEq{field: nil}).
		GroupBy(field).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count %s by %s query: %w", r.tabla.Nombre, field, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error counting %s by %s: %w", r.tabla.Nombre, field, err)
	}
	defer rows.Close()

	out := map[string]int64{}
	for rows.Next() {
		var value string
		var count int64
		if err := rows.Scan(&value, &count); err != nil {
			return nil, fmt.Errorf("error scanning %s count: %w", r.tabla.Nombre, err)
		}
		out[value] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s counts: %w", r.tabla.Nombre, err)
	}
	return out, nil
}

// Count returns the number of rows in the table.
func (r *RegistroRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From(r.tabla.Nombre).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", r.tabla.Nombre, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error counting %s: %w", r.tabla.Nombre, err)
	}
	return count, nil
}
