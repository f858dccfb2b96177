// Package dbtest provides a db.DB double for service tests.
package dbtest

import (
	"context"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

// FakeDB runs transaction functions inline and counts their outcome.
// Query methods are not implemented and panic when called.
type FakeDB struct {
	db.DB

	Commits   int
	Rollbacks int
}

func (f *FakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	if err := txFunc(f); err != nil {
		f.Rollbacks++
		return err
	}
	f.Commits++
	return nil
}
