package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/callcenter-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/callcenter-analytics-api/internal/domain"
)

const (
	monthlyReportsTable = "monthly_reports mr"
)

// MonthlyReportEntry é a linha persistida do cache de relatórios. O relatório
// inteiro vai serializado na coluna JSON; a chave de cache é (mês, versão da
// origem) — quando os arquivos da origem mudam, a versão muda e a entrada
// antiga simplesmente deixa de ser encontrada.
type MonthlyReportEntry struct {
	ID            int64
	Month         domain.MonthKey
	SourceVersion string
	Report        *domain.MonthlyReport
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MonthlyReportRepository interface {
	GetByMonthAndVersion(month domain.MonthKey, sourceVersion string) (*MonthlyReportEntry, error)
	SaveOrUpdate(entry *MonthlyReportEntry) error
	DeleteOlderThan(age time.Duration) (int64, error)
	DeleteByVersionNot(sourceVersion string) (int64, error)
	GetAllMonths() ([]string, error)
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

func (r *monthlyReportRepository) GetByMonthAndVersion(month domain.MonthKey, sourceVersion string) (*MonthlyReportEntry, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.month, mr.source_version, mr.report, mr.created_at, mr.updated_at").
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.month": month, "mr.source_version": sourceVersion}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório mensal: %w", err)
	}

	return entry, nil
}

func (r *monthlyReportRepository) SaveOrUpdate(entry *MonthlyReportEntry) error {
	var reportJSON []byte
	var err error

	if entry.Report != nil {
		reportJSON, err = json.Marshal(entry.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar relatório para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("month", "source_version", "report").
		Values(
			entry.Month,
			entry.SourceVersion,
			reportJSON,
		).
		Suffix(`
			ON CONFLICT (month, source_version) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove entradas que não são atualizadas há mais que a idade
// informada, independente da versão
func (r *monthlyReportRepository) DeleteOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)

	query := squirrel.Delete("monthly_reports").
		Where(squirrel.Lt{"updated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// DeleteByVersionNot remove entradas de versões antigas da origem. Após um
// import de ZIP a versão muda e todas as linhas anteriores viram lixo.
func (r *monthlyReportRepository) DeleteByVersionNot(sourceVersion string) (int64, error) {
	query := squirrel.Delete("monthly_reports").
		Where(squirrel.NotEq{"source_version": sourceVersion}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// GetAllMonths retorna os meses distintos com relatório em cache, em ordem
// decrescente
func (r *monthlyReportRepository) GetAllMonths() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT month").
		From("monthly_reports").
		OrderBy("month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	months := make([]string, 0)
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}
		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

func (r *monthlyReportRepository) scanEntry(row *sql.Row) (*MonthlyReportEntry, error) {
	entry := &MonthlyReportEntry{}
	var reportJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.Month,
		&entry.SourceVersion,
		&reportJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reportJSON != nil {
		report := &domain.MonthlyReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de report: %w", err)
		}
		entry.Report = report
	}

	return entry, nil
}
