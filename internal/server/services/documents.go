package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/dbx"
	"github.com/dmitrijs2005/duosync/internal/document"
	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/dmitrijs2005/duosync/internal/server/broker"
	"github.com/dmitrijs2005/duosync/internal/server/models"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/repomanager"
)

// DocumentService stores user documents and streams their changes.
//
// Any signed-in user may read any document. The owner may write every
// field; anybody else may only write fields that document.ForeignWritable
// allows, which is how partner fan-out and mailbox delivery reach a
// document.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	broker      broker.Broker
	logger      logging.Logger
	now         func() time.Time
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, b broker.Broker, l logging.Logger) *DocumentService {
	return &DocumentService{
		db:          db,
		repomanager: m,
		broker:      b,
		logger:      l.With("module", "documents"),
		now:         time.Now,
	}
}

func (s *DocumentService) Get(ctx context.Context, id document.Identity) (*models.Document, error) {
	if id == "" {
		return nil, common.ErrorInvalidInput
	}
	return s.repomanager.Documents(s.db).Get(ctx, id)
}

func (s *DocumentService) Exists(ctx context.Context, id document.Identity) (bool, error) {
	if id == "" {
		return false, common.ErrorInvalidInput
	}
	return s.repomanager.Documents(s.db).Exists(ctx, id)
}

// Update merges patch into id's document on behalf of caller and returns
// the new version. The owner's first write creates the document; a foreign
// write to a missing document yields common.ErrorNotFound.
func (s *DocumentService) Update(ctx context.Context, caller, id document.Identity, patch document.Patch) (int64, error) {
	writer := "owner"
	if caller != id {
		writer = "foreign"
	}

	doc, err := s.update(ctx, caller, id, patch)
	if err != nil {
		result := "error"
		if errors.Is(err, common.ErrorForbidden) {
			result = "forbidden"
		}
		documentUpdatesTotal.WithLabelValues(writer, result).Inc()
		return 0, err
	}
	documentUpdatesTotal.WithLabelValues(writer, "ok").Inc()

	if err := s.broker.Publish(ctx, broker.Event{Identity: doc.Identity, Body: doc.Body, Version: doc.Version}); err != nil {
		publishFailuresTotal.Inc()
		s.logger.Warn(ctx, "publish document change", "identity", id, "version", doc.Version, "error", err)
	}
	return doc.Version, nil
}

func (s *DocumentService) update(ctx context.Context, caller, id document.Identity, patch document.Patch) (*models.Document, error) {
	if caller == "" || id == "" || len(patch) == 0 {
		return nil, common.ErrorInvalidInput
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidInput, err)
	}
	if caller != id {
		for _, f := range patch.Fields() {
			if !document.ForeignWritable(f) {
				s.logger.Warn(ctx, "foreign write rejected", "caller", caller, "identity", id, "field", f)
				return nil, fmt.Errorf("%w: %s may not write %q", common.ErrorForbidden, caller, f)
			}
		}
	}

	// A concurrent first write can win the insert; the retry then takes the
	// update path.
	var doc *models.Document
	for attempt := 0; attempt < 2; attempt++ {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			var err error
			doc, err = s.apply(ctx, tx, caller, id, patch)
			return err
		})
		if errors.Is(err, common.ErrorAlreadyExists) {
			continue
		}
		return doc, err
	}
	return nil, fmt.Errorf("%w: document %s kept changing", common.ErrorInternal, id)
}

func (s *DocumentService) apply(ctx context.Context, tx dbx.DBTX, caller, id document.Identity, patch document.Patch) (*models.Document, error) {
	repo := s.repomanager.Documents(tx)
	now := s.now().UTC()

	cur, err := repo.GetForUpdate(ctx, id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		if caller != id {
			return nil, err
		}
		doc := &models.Document{Identity: id, Body: document.Raw{}.Apply(patch), Version: 1, UpdatedAt: now}
		if err := repo.Create(ctx, doc); err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "document created", "identity", id)
		return doc, nil
	case err != nil:
		return nil, err
	}

	cur.Body = cur.Body.Apply(patch)
	cur.Version++
	cur.UpdatedAt = now
	if err := repo.Update(ctx, cur); err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "document updated", "identity", id, "caller", caller, "version", cur.Version, "fields", patch.Fields())
	return cur, nil
}

// Subscribe calls send with id's current document, if it exists, and then
// with every newer version until ctx ends or send fails. Versions never go
// backwards on one stream.
func (s *DocumentService) Subscribe(ctx context.Context, id document.Identity, send func(*models.Document) error) error {
	if id == "" {
		return common.ErrorInvalidInput
	}

	events, stop := s.broker.Subscribe(id)
	defer stop()

	documentSubscribers.Inc()
	defer documentSubscribers.Dec()

	var last int64
	cur, err := s.repomanager.Documents(s.db).Get(ctx, id)
	switch {
	case err == nil:
		if err := send(cur); err != nil {
			return err
		}
		last = cur.Version
	case !errors.Is(err, common.ErrorNotFound):
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Version <= last {
				continue
			}
			if err := send(&models.Document{Identity: ev.Identity, Body: ev.Body, Version: ev.Version}); err != nil {
				return err
			}
			last = ev.Version
		}
	}
}

// PartnerOf returns the partner recorded in id's document, or "" when the
// document is unlinked.
func (s *DocumentService) PartnerOf(ctx context.Context, id document.Identity) (document.Identity, error) {
	doc, err := s.repomanager.Documents(s.db).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil
		}
		return "", err
	}

	raw, ok := doc.Body[string(document.FieldPartnerIdentity)]
	if !ok {
		return "", nil
	}
	var partner *document.Identity
	if err := json.Unmarshal(raw, &partner); err != nil {
		return "", fmt.Errorf("decode partner of %s: %w", id, err)
	}
	if partner == nil {
		return "", nil
	}
	return *partner, nil
}
