package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"backoffice/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 100

// Store хранилище файлов резервной копии
type Store interface {
	Put(ctx context.Context, name string, data []byte) error
	Get(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

type table struct {
	name string
	dump func(tx *gorm.DB) ([]byte, int, error)
	load func(tx *gorm.DB, data []byte) (int, error)
}

func tableOf[T any](name string) table {
	return table{
		name: name,
		dump: func(tx *gorm.DB) ([]byte, int, error) {
			var rows []T
			if err := tx.Table(name).Order("id").Find(&rows).Error; err != nil {
				return nil, 0, err
			}
			if rows == nil {
				rows = []T{}
			}
			data, err := json.MarshalIndent(rows, "", "  ")
			return data, len(rows), err
		},
		load: func(tx *gorm.DB, data []byte) (int, error) {
			var rows []T
			if err := json.Unmarshal(data, &rows); err != nil {
				return 0, err
			}
			if len(rows) == 0 {
				return 0, nil
			}
			return len(rows), tx.Omit(clause.Associations).CreateInBatches(&rows, batchSize).Error
		},
	}
}

// tables в порядке внешних ключей; пользователи в копию не входят
var tables = []table{
	tableOf[ds.Process]("processes"),
	tableOf[ds.Partner]("partners"),
	tableOf[ds.Seller]("sellers"),
	tableOf[ds.Fee]("fees"),
	tableOf[ds.Client]("clients"),
	tableOf[ds.ProcessFee]("process_fees"),
	tableOf[ds.Order]("orders"),
	tableOf[ds.OrderFee]("order_fees"),
	tableOf[ds.Payment]("payments"),
	tableOf[ds.PostponedPayment]("postponed_payments"),
}

// Tables имена таблиц, входящих в резервную копию
func Tables() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}

// FileName имя файла таблицы внутри копии
func FileName(prefix, tableName string) string {
	return path.Join(prefix, "backup_"+tableName+".json")
}

// Prefixes возвращает префиксы сохранённых копий, от старых к новым.
// Копией считается префикс, под которым лежит файл первой таблицы.
func (s *Service) Prefixes(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	marker := FileName("", tables[0].name)
	prefixes := []string{}
	for _, name := range names {
		dir, file := path.Split(name)
		if file != marker || dir == "" {
			continue
		}
		prefixes = append(prefixes, strings.TrimSuffix(dir, "/"))
	}
	sort.Strings(prefixes)
	return prefixes, nil
}

type Service struct {
	db    *gorm.DB
	store Store
}

func NewService(db *gorm.DB, store Store) *Service {
	return &Service{db: db, store: store}
}

// Export выгружает каждую таблицу в отдельный JSON файл.
// Возвращает количество строк по таблицам.
func (s *Service) Export(ctx context.Context, prefix string) (map[string]int, error) {
	counts := make(map[string]int, len(tables))

	// один снимок для всех таблиц
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			data, n, err := t.dump(tx)
			if err != nil {
				return fmt.Errorf("dump %s: %w", t.name, err)
			}
			if err := s.store.Put(ctx, FileName(prefix, t.name), data); err != nil {
				return fmt.Errorf("store %s: %w", t.name, err)
			}
			counts[t.name] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"prefix": prefix, "tables": counts}).Info("backup exported")
	return counts, nil
}

// Import загружает таблицы из копии в одной транзакции, сохраняя id и pid.
// Ошибка в любой таблице откатывает весь импорт.
func (s *Service) Import(ctx context.Context, prefix string) (map[string]int, error) {
	counts := make(map[string]int, len(tables))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			data, err := s.store.Get(ctx, FileName(prefix, t.name))
			if err != nil {
				return fmt.Errorf("read %s: %w", t.name, err)
			}
			n, err := t.load(tx, data)
			if err != nil {
				return fmt.Errorf("load %s: %w", t.name, err)
			}
			counts[t.name] = n
		}
		return resetSequences(tx)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"prefix": prefix, "tables": counts}).Info("backup imported")
	return counts, nil
}

// resetSequences сдвигает последовательности id после вставки явных id (только Postgres)
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, t := range tables {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			t.name,
		)
		if err := tx.Exec(query).Error; err != nil {
			return fmt.Errorf("reset sequence %s: %w", t.name, err)
		}
	}
	return nil
}
