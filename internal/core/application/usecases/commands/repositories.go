// Package commands contains the write operations of the tracker service.
// Every command is a constructor-validated value handled by a handler that
// runs inside its own unit of work.
package commands

import (
	"context"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TrackerRepoFactory provides the tracker repository bound to a transaction.
	TrackerRepoFactory interface {
		TrackerRepository() ports.TrackerRepository
	}

	// TrackerUoW manages transactions for tracker operations.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.TrackerRepository()
	//   // ... load, transition, update
	//
	//   return uow.Commit(ctx)
	TrackerUoW interface {
		TxManager
		TrackerRepoFactory
	}

	// TrackerUoWFactory creates a fresh unit of work per command.
	TrackerUoWFactory interface {
		Create() TrackerUoW
	}
)
