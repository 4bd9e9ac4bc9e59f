package database

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ProcedureCall describes a stored procedure invocation. When Table and
// NewRow are set, the rows are staged in temporary tables shaped like Table
// and their names are passed to the procedure.
type ProcedureCall struct {
	Procedure string
	Table     string
	NewRow    map[string]any
	OldRow    map[string]any
}

// CallProcedure runs the call on a single pinned connection so the session
// scoped temporary tables stay visible. Temporary tables are always dropped.
func (db *DB) CallProcedure(ctx context.Context, call ProcedureCall) error {
	if err := validateIdentifier(call.Procedure); err != nil {
		return err
	}
	staged := call.Table != "" && call.NewRow != nil
	if staged {
		if err := validateIdentifier(call.Table); err != nil {
			return err
		}
		for _, row := range []map[string]any{call.NewRow, call.OldRow} {
			for column := range row {
				if err := validateIdentifier(column); err != nil {
					return err
				}
			}
		}
	}

	err := db.WithContext(ctx).Connection(func(conn *gorm.DB) (err error) {
		var temps []string
		defer func() {
			for _, name := range temps {
				if dropErr := conn.Exec("DROP TABLE IF EXISTS " + name).Error; dropErr != nil {
					db.logger.WithError(dropErr).WithField("table", name).Warn("failed to drop temporary table")
				}
			}
		}()

		var args []string
		if staged {
			rows := []map[string]any{call.NewRow}
			if call.OldRow != nil {
				rows = append(rows, call.OldRow)
			}
			for _, row := range rows {
				name, err := stageRow(conn, call.Table, row)
				if name != "" {
					temps = append(temps, name)
				}
				if err != nil {
					return err
				}
				args = append(args, "'"+name+"'")
			}
		}

		return conn.Exec(fmt.Sprintf("CALL %s(%s)", call.Procedure, strings.Join(args, ", "))).Error
	})
	if err != nil {
		db.logger.WithError(err).WithFields(logrus.Fields{
			"procedure": call.Procedure,
			"table":     call.Table,
		}).Error("stored procedure call failed")
		return err
	}
	return nil
}

func stageRow(conn *gorm.DB, table string, row map[string]any) (string, error) {
	name := TemporaryTableName(table)
	if err := conn.Exec(fmt.Sprintf("CREATE TEMPORARY TABLE %s (LIKE %s INCLUDING DEFAULTS)", name, table)).Error; err != nil {
		return "", err
	}

	columns := make([]string, 0, len(row))
	for column := range row {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	values := make([]any, len(columns))
	for i, column := range columns {
		values[i] = row[column]
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", name, strings.Join(columns, ", "), placeholders)

	return name, conn.Exec(insert, values...).Error
}

// TemporaryTableName derives a unique session table name from an entity table.
func TemporaryTableName(table string) string {
	base := strings.ToLower(strings.ReplaceAll(table, ".", "_"))
	return "temp_" + base + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func validateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}
