package report

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"golang.org/x/sync/errgroup"
)

// DefaultRecentActivities is the number of activities a summary lists
const DefaultRecentActivities = 5

// Activity is one recently created or edited record
type Activity struct {
	Action     string    `json:"action"`
	Item       string    `json:"item"`
	Collection string    `json:"collection"`
	Subtype    string    `json:"subtype"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

// DashboardSummary holds the headline counts and the latest activity
type DashboardSummary struct {
	TotalItems       int        `json:"totalItems"`
	ActiveParties    int        `json:"activeParties"`
	PendingIndents   int        `json:"pendingIndents"`
	PurchaseOrders   int        `json:"purchaseOrders"`
	RecentActivities []Activity `json:"recentActivities"`
	GeneratedAt      time.Time  `json:"generatedAt"`
}

// DashboardService computes the home screen summary from the record buckets
type DashboardService struct {
	parties   record.Repository[master.Party]
	items     record.Repository[master.Item]
	documents record.Repository[document.Document]
	now       func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	parties record.Repository[master.Party],
	items record.Repository[master.Item],
	documents record.Repository[document.Document],
) *DashboardService {
	return &DashboardService{parties: parties, items: items, documents: documents, now: time.Now}
}

// Summary reads every bucket concurrently. limit caps the activity list;
// zero or less uses DefaultRecentActivities.
func (s *DashboardService) Summary(ctx context.Context, limit int) (_ *DashboardSummary, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "summary")
	defer func() { telemetry.EndSpan(span, err) }()

	if limit <= 0 {
		limit = DefaultRecentActivities
	}

	partyLists := make([][]record.Entry[master.Party], len(master.PartySubtypes()))
	itemLists := make([][]record.Entry[master.Item], len(master.ItemSubtypes()))
	docLists := make([][]record.Entry[document.Document], len(document.AllKinds()))

	g, gctx := errgroup.WithContext(ctx)
	for i, st := range master.PartySubtypes() {
		g.Go(func() (err error) {
			partyLists[i], err = s.parties.FindAll(gctx, string(st))
			return err
		})
	}
	for i, st := range master.ItemSubtypes() {
		g.Go(func() (err error) {
			itemLists[i], err = s.items.FindAll(gctx, string(st))
			return err
		})
	}
	for i, k := range document.AllKinds() {
		g.Go(func() (err error) {
			docLists[i], err = s.documents.FindAll(gctx, string(k))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &DashboardSummary{GeneratedAt: s.now()}
	var activities []Activity

	for _, list := range partyLists {
		for _, e := range list {
			if e.Value.IsActive() {
				summary.ActiveParties++
			}
			activities = append(activities, activity(master.PartyCollection, e.Subtype, e.ID,
				"Party", e.Value.PartyName, e.Value.CreatedAt, e.Value.UpdatedAt))
		}
	}
	for _, list := range itemLists {
		summary.TotalItems += len(list)
		for _, e := range list {
			activities = append(activities, activity(master.ItemCollection, e.Subtype, e.ID,
				"Item", e.Value.ItemName, e.Value.CreatedAt, e.Value.UpdatedAt))
		}
	}
	for _, list := range docLists {
		for _, e := range list {
			d := e.Value
			kind := document.Kind(e.Subtype)
			switch {
			case kind == document.KindIndent && d.Status == document.StatusPending:
				summary.PendingIndents++
			case kind == document.KindPurchaseOrder:
				summary.PurchaseOrders++
			}
			activities = append(activities, activity(document.Collection, e.Subtype, e.ID,
				kind.Label(), d.DocumentNumber, d.CreatedAt, d.UpdatedAt))
		}
	}

	slices.SortFunc(activities, func(a, b Activity) int {
		if c := b.At.Compare(a.At); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	summary.RecentActivities = activities
	if summary.RecentActivities == nil {
		summary.RecentActivities = []Activity{}
	}
	return summary, nil
}

// activity labels a record "New <label>" or "<label> Updated" depending on
// whether it was edited after creation.
func activity(collection, subtype, id, label, name string, created, updated time.Time) Activity {
	a := Activity{
		Action:     "New " + label,
		Item:       name,
		Collection: collection,
		Subtype:    subtype,
		ID:         id,
		At:         updated,
	}
	if updated.After(created) {
		a.Action = label + " Updated"
	}
	if a.At.IsZero() {
		a.At = created
	}
	return a
}
