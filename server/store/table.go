package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
)

const dbTagName = "db"

// Table provides the common create, read, list and delete operations for a table
// backing one model type. Concrete stores embed a Table and add model-specific queries.
type Table struct {
	db        *DB
	tableName string
	logger.Log
}

// NewTable creates a Table for the supplied model. See MustDBModel for the naming rules.
func NewTable(db *DB, logFactory logger.LogFactory, model interface{}) *Table {
	tableName := MustDBModel(model)
	return &Table{
		db:        db,
		tableName: tableName,
		Log:       logFactory(tableName + "Table"),
	}
}

// MustDBModel checks that every db tagged field of model shares a common prefix (e.g. "device_")
// and returns the table name derived from it (e.g. "devices"). Panics if the model does not follow this rule.
func MustDBModel(model interface{}) string {
	fields := make(map[string]struct{})
	collectDBTags(reflect.TypeOf(model), fields)
	if len(fields) == 0 {
		panic(fmt.Sprintf("model %T has no db fields", model))
	}
	prefix := ""
	for field := range fields {
		idx := strings.Index(field, "_")
		if idx <= 0 {
			panic(fmt.Sprintf("db field %q of model %T is not prefixed with the table name", field, model))
		}
		candidate := field[:idx]
		if prefix == "" {
			prefix = candidate
		} else if prefix != candidate {
			panic(fmt.Sprintf("all db fields of model %T must share one prefix; found %q and %q", model, prefix, candidate))
		}
	}
	return prefix + "s"
}

func collectDBTags(t reflect.Type, fields map[string]struct{}) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			collectDBTags(field.Type, fields)
		} else if val, ok := field.Tag.Lookup(dbTagName); ok && val != "-" {
			fields[val] = struct{}{}
		}
	}
}

// Dialect returns the goqu dialect (sqlite3, postgres etc.) in use.
func (t *Table) Dialect() goqu.DialectWrapper {
	return goqu.Dialect(t.db.DriverName())
}

func (t *Table) TableName() string {
	return t.tableName
}

// Create inserts a new row for model.
// Returns gerror.ErrAlreadyExists if a row with matching unique properties already exists.
func (t *Table) Create(ctx context.Context, txOrNil *Tx, model interface{}) error {
	return t.db.Write(txOrNil, func(db Writer) error {
		_, err := t.logInsert(db.Insert(t.tableName).Rows(model)).Executor().ExecContext(ctx)
		if err != nil {
			return errors.Wrap(MakeStandardDBError(err), "error executing create query")
		}
		return nil
	})
}

// ReadWhere reads a single row matching the supplied where clauses into model.
// Returns gerror.ErrNotFound if no row matches.
func (t *Table) ReadWhere(ctx context.Context, txOrNil *Tx, model interface{}, where ...goqu.Expression) error {
	ds := t.Dialect().From(t.tableName).Select(model).Where(where...).Limit(1)
	return t.db.Read(txOrNil, func(db Reader) error {
		query, args, err := ds.ToSQL()
		if err != nil {
			return fmt.Errorf("error generating query: %w", err)
		}
		t.LogQuery(query, args)
		found, err := db.ScanStructContext(ctx, model, query, args...)
		if err != nil {
			return MakeStandardDBError(err)
		}
		if !found {
			return gerror.NewErrNotFound("Not Found")
		}
		return nil
	})
}

// ListWhere reads every row matching the supplied where clauses, in the supplied order, into models.
// models must be a pointer to a slice of the model type e.g. &[]*models.Device.
func (t *Table) ListWhere(ctx context.Context, txOrNil *Tx, models interface{}, order []exp.OrderedExpression, where ...goqu.Expression) error {
	ds := t.Dialect().From(t.tableName).Select(reflect.New(sliceElemType(models)).Interface()).Where(where...).Order(order...)
	return t.db.Read(txOrNil, func(db Reader) error {
		query, args, err := ds.ToSQL()
		if err != nil {
			return fmt.Errorf("error generating query: %w", err)
		}
		t.LogQuery(query, args)
		err = db.ScanStructsContext(ctx, models, query, args...)
		if err != nil {
			return MakeStandardDBError(err)
		}
		return nil
	})
}

// CountWhere counts the rows matching the supplied where clauses.
func (t *Table) CountWhere(ctx context.Context, txOrNil *Tx, where ...goqu.Expression) (int64, error) {
	ds := t.Dialect().From(t.tableName).Select(goqu.COUNT(goqu.Star())).Where(where...)
	var count int64
	err := t.db.Read(txOrNil, func(db Reader) error {
		query, args, err := ds.ToSQL()
		if err != nil {
			return fmt.Errorf("error generating query: %w", err)
		}
		t.LogQuery(query, args)
		_, err = db.ScanValContext(ctx, &count, query, args...)
		if err != nil {
			return MakeStandardDBError(err)
		}
		return nil
	})
	return count, err
}

// DeleteWhere idempotently deletes every row matching the supplied where clauses.
func (t *Table) DeleteWhere(ctx context.Context, txOrNil *Tx, where ...goqu.Expression) error {
	return t.db.Write(txOrNil, func(db Writer) error {
		ds := db.Delete(t.tableName).Where(where...)
		t.logQueryDS(ds)
		_, err := ds.Executor().ExecContext(ctx)
		if err != nil {
			return errors.Wrap(MakeStandardDBError(err), "error executing delete query")
		}
		return nil
	})
}

// MakeStandardDBError converts driver specific constraint errors to gerror errors.
func MakeStandardDBError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code == sqlite3.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
			return gerror.NewErrAlreadyExists("Resource already exists").Wrap(sqliteErr)
		}
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		// 23505 -> unique_violation
		if pgErr.Code == "23505" {
			return gerror.NewErrAlreadyExists("Resource already exists").Wrap(pgErr)
		}
	}
	return err
}

type queryBuilder interface {
	ToSQL() (sql string, params []interface{}, err error)
}

func (t *Table) logInsert(ds *goqu.InsertDataset) *goqu.InsertDataset {
	t.logQueryDS(ds)
	return ds
}

func (t *Table) logQueryDS(ds queryBuilder) {
	query, args, err := ds.ToSQL()
	if err != nil {
		t.Errorf("Error generating query: %v", err)
		return
	}
	t.LogQuery(query, args)
}

// LogQuery logs a SQL query and args to the configured logger.
func (t *Table) LogQuery(query string, args []interface{}) {
	t.WithFields(logger.Fields{"query": query, "args": args}).Trace()
}

func sliceElemType(slicePtr interface{}) reflect.Type {
	t := reflect.TypeOf(slicePtr)
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Slice {
		panic(fmt.Sprintf("expected pointer to slice, found %T", slicePtr))
	}
	elem := t.Elem().Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	return elem
}
