// Package repository provides constructors of the host store implementations.
package repository

import (
	"context"

	"github.com/secmon-lab/alertpost/pkg/repository/firestore"
	"github.com/secmon-lab/alertpost/pkg/repository/memory"
	"github.com/secmon-lab/alertpost/pkg/repository/sqlite"
)

type (
	Firestore = firestore.Firestore
	Memory    = memory.Memory
	SQLite    = sqlite.SQLite
)

// NewFirestore creates a new Firestore repository client
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	return firestore.New(ctx, projectID, databaseID)
}

// NewMemory creates a new in-memory repository
func NewMemory() *Memory {
	return memory.New()
}

// NewSQLite opens a SQLite repository and applies its migrations
func NewSQLite(dsn string) (*SQLite, error) {
	return sqlite.New(dsn)
}
