// Package services contains application services of the clubauth client.
// SessionService carries the signed-in identity across restarts: it
// restores it into the session store at start-up and mirrors every later
// change into the local database.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/clubauth/internal/client/session"
	"github.com/dmitrijs2005/clubauth/internal/dbx"
	"github.com/dmitrijs2005/clubauth/internal/logging"
)

const (
	keyUserID = "session.uid"
	keyEmail  = "session.email"
)

// SessionService persists the session held by a session.Store.
type SessionService struct {
	db     *sql.DB
	store  *session.Store
	logger logging.Logger
}

func NewSessionService(db *sql.DB, store *session.Store, logger logging.Logger) *SessionService {
	return &SessionService{
		db:     db,
		store:  store,
		logger: logger.With("module", "session_service"),
	}
}

func (s *SessionService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Restore loads the saved identity, if any, into the store. It reports
// whether an identity was found. Partial records are treated as absent.
func (s *SessionService) Restore(ctx context.Context) (models.Identity, bool, error) {
	saved, err := s.repo(s.db).GetMany(ctx, keyUserID, keyEmail)
	if err != nil {
		return models.Identity{}, false, fmt.Errorf("restore session: %w", err)
	}

	uid, email := string(saved[keyUserID]), string(saved[keyEmail])
	if uid == "" || email == "" {
		return models.Identity{}, false, nil
	}

	identity := models.Identity{ID: uid, Email: email}
	s.store.Set(&identity)
	s.logger.Debug(ctx, "session restored", "uid", uid)
	return identity, true, nil
}

// Track mirrors every store change into the database until stop is called.
// Write failures are logged; the in-memory session stays authoritative.
func (s *SessionService) Track(ctx context.Context) (stop func()) {
	return s.store.Subscribe(func(identity *models.Identity) {
		var err error
		if identity == nil {
			err = s.Clear(ctx)
		} else {
			err = s.Save(ctx, *identity)
		}
		if err != nil {
			s.logger.Error(ctx, "session not persisted", "error", err)
		}
	})
}

// Save writes identity in a single transaction.
func (s *SessionService) Save(ctx context.Context, identity models.Identity) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyUserID, []byte(identity.ID)); err != nil {
			return err
		}
		return repo.Set(ctx, keyEmail, []byte(identity.Email))
	})
}

// Clear removes the saved identity.
func (s *SessionService) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, keyUserID, keyEmail)
}

// SignOut clears the session in memory and on disk.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.Clear(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	s.store.Set(nil)
	s.logger.Info(ctx, "signed out")
	return nil
}
