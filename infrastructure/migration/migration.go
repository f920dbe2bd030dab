package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
)

//go:embed schema.sql
var schema string

// Statements divide o schema em comandos individuais, ignorando linhas vazias
func Statements() []string {
	parts := strings.Split(schema, ";")
	statements := make([]string, 0, len(parts))

	for _, part := range parts {
		statement := strings.TrimSpace(part)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}

	return statements
}

// Apply cria as tabelas numa única transação. Pode ser executado repetidas vezes.
func Apply(ctx context.Context, conn postgres.Conn) error {
	startTime := time.Now()
	statements := Statements()

	logrus.Infof("Iniciando migração com %d comandos...", len(statements))

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro no comando %d da migração: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
	return nil
}
