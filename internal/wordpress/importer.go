// Package wordpress implements the WXR migration pipeline: a lazy item
// stream, declarative field mapping, per-field normalization and an
// idempotent create-or-update reconciliation against a page store.
package wordpress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/contentbridge/wpimport/internal/entities"
)

// ErrParentNotFound aborts a run whose configured parent page is missing.
var ErrParentNotFound = fmt.Errorf("parent page not found")

// BadDatePolicy decides what an unparsable (non-sentinel) date does to the
// run: abort it, or skip the record and keep going.
type BadDatePolicy string

const (
	BadDateFail BadDatePolicy = "fail"
	BadDateSkip BadDatePolicy = "skip"
)

const skipReasonNoMatch = "no title or status match"

// RecordSource yields raw records until io.EOF. *Stream satisfies it.
type RecordSource interface {
	Next() (RawRecord, error)
}

// AuditEntry is the per-record log line kept for post-hoc review.
// DateCheck and SlugCheck are empty for records that never reached the
// transformer.
type AuditEntry struct {
	PostID    string `json:"post_id"`
	Title     string `json:"title"`
	Result    string `json:"result"`
	Reason    string `json:"reason"`
	DateCheck string `json:"datecheck"`
	SlugCheck string `json:"slugcheck"`
}

// Result aggregates one full run: counters plus the ordered audit log.
type Result struct {
	Processed int
	Imported  int
	Skipped   int
	Entries   []AuditEntry
}

// Options configures one import run.
type Options struct {
	Mapping      MappingSpec
	Model        string // target page model selector, e.g. "pages.PostPage"
	ParentID     uint
	PageTypes    []string
	PageStatuses []string
	BadDates     BadDatePolicy
	Console      io.Writer // per-record report; defaults to stdout
	Logger       *logrus.Logger
}

// Importer drives the whole pipeline over a record source, one record
// fully transformed and reconciled before the next is read.
type Importer struct {
	opts        Options
	transformer *Transformer
	reconciler  *Reconciler
	store       PageStore
	types       map[string]bool
	statuses    map[string]bool
	log         *logrus.Logger
}

// NewImporter validates the mapping and wires the transformer and
// reconciler. A duplicate source alias fails here, before any document is
// touched.
func NewImporter(store PageStore, opts Options) (*Importer, error) {
	transformer, err := NewTransformer(opts.Mapping, NewContentPipeline())
	if err != nil {
		return nil, err
	}

	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.BadDates == "" {
		opts.BadDates = BadDateFail
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	return &Importer{
		opts:        opts,
		transformer: transformer,
		reconciler:  NewReconciler(store, opts.ParentID),
		store:       store,
		types:       toSet(opts.PageTypes),
		statuses:    toSet(opts.PageStatuses),
		log:         opts.Logger,
	}, nil
}

// Run consumes the source to exhaustion. Pre-flight failures (unknown
// page model, missing parent) abort before any record is read. Fatal
// mid-run errors return alongside the partial result so the audit trail
// up to the failure survives.
func (i *Importer) Run(source RecordSource) (Result, error) {
	result := Result{}

	if _, err := entities.ResolvePageModel(i.opts.Model); err != nil {
		return result, err
	}

	exists, err := i.store.ParentExists(i.opts.ParentID)
	if err != nil {
		return result, fmt.Errorf("failed to check parent page %d: %w", i.opts.ParentID, err)
	}
	if !exists {
		return result, fmt.Errorf("%w: id %d", ErrParentNotFound, i.opts.ParentID)
	}

	i.log.WithFields(logrus.Fields{
		"parent":   i.opts.ParentID,
		"types":    i.opts.PageTypes,
		"statuses": i.opts.PageStatuses,
	}).Info("starting wordpress import")

	for {
		item, err := source.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, err
		}

		result.Processed++
		entry, err := i.processItem(item)
		if err != nil {
			return result, err
		}

		switch entry.Result {
		case string(OutcomeCreated), string(OutcomeUpdated):
			result.Imported++
		default:
			result.Skipped++
		}

		result.Entries = append(result.Entries, entry)
		fmt.Fprintf(i.opts.Console, "%s %s\n", entry.Title, entry.Result)
	}

	i.log.WithFields(logrus.Fields{
		"processed": result.Processed,
		"imported":  result.Imported,
		"skipped":   result.Skipped,
	}).Info("wordpress import finished")

	return result, nil
}

func (i *Importer) processItem(item RawRecord) (AuditEntry, error) {
	entry := AuditEntry{
		PostID: strings.TrimSpace(item["wp:post_id"]),
		Title:  item["title"],
	}

	if !i.types[item["wp:post_type"]] || !i.statuses[item["wp:status"]] {
		entry.Result = string(OutcomeSkipped)
		entry.Reason = skipReasonNoMatch
		return entry, nil
	}

	record, err := i.transformer.Transform(item)
	if err != nil {
		if errors.Is(err, ErrDateFormat) && i.opts.BadDates == BadDateSkip {
			i.log.WithField("post_id", entry.PostID).WithError(err).Warn("skipping record with bad date")
			entry.Result = string(OutcomeSkipped)
			entry.Reason = "invalid date"
			return entry, nil
		}
		return entry, err
	}

	postID, err := strconv.Atoi(entry.PostID)
	if err != nil {
		return entry, fmt.Errorf("%w: item %q has no numeric wp:post_id", ErrParse, entry.Title)
	}

	_, outcome, err := i.reconciler.Reconcile(record, postID, item["wp:status"])
	if err != nil {
		return entry, err
	}

	entry.Result = string(outcome)
	if outcome == OutcomeCreated {
		entry.Reason = "new"
	} else {
		entry.Reason = "existed"
	}
	entry.DateCheck = strconv.FormatBool(record.DateValid)
	entry.SlugCheck = string(record.SlugOutcome)

	return entry, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.TrimSpace(v)] = true
	}
	return set
}
