package store

import (
	"encoding/json"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// record is one persisted entity, stored as a JSON document row keyed by
// (collection, id). Keeping the schema a single table lets Persist rewrite
// the whole snapshot inside one transaction.
type record struct {
	Collection string `gorm:"primaryKey;size:32"`
	ID         string `gorm:"primaryKey;size:64"`
	Data       []byte `gorm:"not null"`
}

func (record) TableName() string {
	return "records"
}

// GormStore persists snapshots to SQLite through GORM. Each Persist
// replaces every row in a single transaction, so readers of the database
// file always see the state of the last committed operation.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}
	return &GormStore{db: db}, nil
}

const (
	colCustomers    = "customers"
	colReservations = "reservations"
	colTables       = "tables"
	colMenu         = "menu"
	colOrders       = "orders"
	colBills        = "bills"
)

func (gs *GormStore) Load() (*Snapshot, error) {
	var rows []record
	if err := gs.db.Find(&rows).Error; err != nil {
		return nil, corrupt("read records: %v", err)
	}

	s := NewSnapshot()
	for _, row := range rows {
		var err error
		switch row.Collection {
		case colCustomers:
			err = decodeInto(row, s.Customers)
		case colReservations:
			err = decodeInto(row, s.Reservations)
		case colTables:
			err = decodeInto(row, s.Tables)
		case colMenu:
			err = decodeInto(row, s.Menu)
		case colOrders:
			err = decodeInto(row, s.Orders)
		case colBills:
			err = decodeInto(row, s.Bills)
		default:
			err = corrupt("unknown collection %q", row.Collection)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (gs *GormStore) Persist(s *Snapshot) error {
	rows := make([]record, 0,
		len(s.Customers)+len(s.Reservations)+len(s.Tables)+
			len(s.Menu)+len(s.Orders)+len(s.Bills))

	var err error
	rows, err = appendRows(rows, colCustomers, s.Customers)
	if err == nil {
		rows, err = appendRows(rows, colReservations, s.Reservations)
	}
	if err == nil {
		rows, err = appendRows(rows, colTables, s.Tables)
	}
	if err == nil {
		rows, err = appendRows(rows, colMenu, s.Menu)
	}
	if err == nil {
		rows, err = appendRows(rows, colOrders, s.Orders)
	}
	if err == nil {
		rows, err = appendRows(rows, colBills, s.Bills)
	}
	if err != nil {
		return err
	}

	return gs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&record{}).Error; err != nil {
			return fmt.Errorf("clear records: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert records: %w", err)
		}
		return nil
	})
}

func decodeInto[T any](row record, dst map[string]T) error {
	var v T
	if err := json.Unmarshal(row.Data, &v); err != nil {
		return corrupt("%s/%s: %v", row.Collection, row.ID, err)
	}
	dst[row.ID] = v
	return nil
}

func appendRows[T any](rows []record, collection string, src map[string]T) ([]record, error) {
	for id, v := range src {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal %s/%s: %w", collection, id, err)
		}
		rows = append(rows, record{Collection: collection, ID: id, Data: data})
	}
	return rows, nil
}
