package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"crackTimeBackend/internal/core/domain"
	"crackTimeBackend/internal/port"
)

type mysqlRepository struct {
	db *sql.DB
}

// NewMySQLRepository opens the audit database and ensures the schema. Rows
// hold derived numbers only; the schema has no column a password could end
// up in.
func NewMySQLRepository(ctx context.Context, dsn string) (port.Repository, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	repo := &mysqlRepository{db: conn}
	if err := repo.initSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return repo, nil
}

func (r *mysqlRepository) initSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS analysis_reports (
            id             VARCHAR(36) PRIMARY KEY,
            analyzed_at    DATETIME NOT NULL,
            length         INT NOT NULL,
            charset_size   INT NOT NULL,
            entropy_bits   DOUBLE NOT NULL,
            strength_score INT NOT NULL,
            strength_level VARCHAR(16) NOT NULL,
            issue_count    INT NOT NULL,
            common_match   BOOLEAN NOT NULL
        )
    `
	_, err := r.db.ExecContext(ctx, query)
	return err
}

func (r *mysqlRepository) SaveReport(ctx context.Context, report *domain.AnalysisReport) error {
	query := `
        INSERT INTO analysis_reports (
            id, analyzed_at, length, charset_size, entropy_bits,
            strength_score, strength_level, issue_count, common_match
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.AnalyzedAt,
		report.Length,
		report.CharsetSize,
		report.EntropyBits,
		report.StrengthScore,
		report.StrengthLevel,
		report.IssueCount,
		report.CommonMatch,
	)
	return err
}

func (r *mysqlRepository) GetReport(ctx context.Context, reportID string) (*domain.AnalysisReport, error) {
	query := `
        SELECT id, analyzed_at, length, charset_size, entropy_bits,
               strength_score, strength_level, issue_count, common_match
        FROM analysis_reports
        WHERE id = ?
    `

	report := &domain.AnalysisReport{}
	err := r.db.QueryRowContext(ctx, query, reportID).Scan(
		&report.ID,
		&report.AnalyzedAt,
		&report.Length,
		&report.CharsetSize,
		&report.EntropyBits,
		&report.StrengthScore,
		&report.StrengthLevel,
		&report.IssueCount,
		&report.CommonMatch,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (r *mysqlRepository) ListReports(ctx context.Context, filter port.ReportFilter) ([]domain.AnalysisReport, error) {
	query := `
        SELECT id, analyzed_at, length, charset_size, entropy_bits,
               strength_score, strength_level, issue_count, common_match
        FROM analysis_reports
        WHERE 1=1
    `
	args := []interface{}{}

	if filter.Level != "" {
		query += " AND strength_level = ?"
		args = append(args, filter.Level)
	}

	if filter.MinScore > 0 {
		query += " AND strength_score >= ?"
		args = append(args, filter.MinScore)
	}

	if filter.MaxScore > 0 {
		query += " AND strength_score <= ?"
		args = append(args, filter.MaxScore)
	}

	if filter.StartDate > 0 {
		query += " AND analyzed_at >= FROM_UNIXTIME(?)"
		args = append(args, filter.StartDate)
	}

	if filter.EndDate > 0 {
		query += " AND analyzed_at <= FROM_UNIXTIME(?)"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY analyzed_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)

		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.AnalysisReport
	for rows.Next() {
		var report domain.AnalysisReport
		err := rows.Scan(
			&report.ID,
			&report.AnalyzedAt,
			&report.Length,
			&report.CharsetSize,
			&report.EntropyBits,
			&report.StrengthScore,
			&report.StrengthLevel,
			&report.IssueCount,
			&report.CommonMatch,
		)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}
