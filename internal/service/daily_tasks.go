package service

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/limbo/taskstars/pkg/entity"
)

type CatalogTask struct {
	Title       string
	Description string
	Points      int
}

var defaultCatalog = map[entity.AgeGroup][]CatalogTask{
	entity.AgeGroupLittle: {
		{Title: "Make your bed", Description: "Pull up the blanket and put the pillow in place", Points: 10},
		{Title: "Put toys away", Description: "Every toy back in its box", Points: 10},
		{Title: "Brush teeth twice", Description: "Morning and evening, two minutes each", Points: 5},
		{Title: "Feed the pet", Description: "Fill the bowl with help from a grown-up", Points: 10},
		{Title: "Read a picture book", Description: "Read or look through a book for 10 minutes", Points: 15},
		{Title: "Set the table", Description: "Put out plates, cups and spoons", Points: 10},
	},
	entity.AgeGroupJunior: {
		{Title: "Make your bed", Description: "Neat sheets and pillow", Points: 10},
		{Title: "Read for 20 minutes", Description: "Any book you like", Points: 20},
		{Title: "Pack your school bag", Description: "Books, homework and snack ready for tomorrow", Points: 10},
		{Title: "Help with dishes", Description: "Dry and put away the dishes", Points: 15},
		{Title: "Tidy your room", Description: "Clothes in the hamper, floor clear", Points: 15},
		{Title: "Practice an instrument", Description: "15 minutes of practice", Points: 20},
	},
	entity.AgeGroupTween: {
		{Title: "Finish homework", Description: "All assignments due tomorrow", Points: 20},
		{Title: "Read for 30 minutes", Description: "Book, magazine or comic", Points: 20},
		{Title: "Load the dishwasher", Description: "Load and start it after dinner", Points: 15},
		{Title: "Take out the trash", Description: "Empty bins and take the bag outside", Points: 10},
		{Title: "30 minutes of exercise", Description: "Bike, run, sport or dance", Points: 20},
		{Title: "Fold laundry", Description: "Fold and put away your clothes", Points: 15},
	},
	entity.AgeGroupTeen: {
		{Title: "Finish homework", Description: "All assignments due tomorrow", Points: 20},
		{Title: "Cook a simple meal", Description: "Help prepare dinner for the family", Points: 30},
		{Title: "Do your laundry", Description: "Wash, dry and fold one load", Points: 25},
		{Title: "Clean the bathroom sink", Description: "Sink and mirror sparkling", Points: 20},
		{Title: "45 minutes of exercise", Description: "Any physical activity", Points: 25},
		{Title: "Read for 40 minutes", Description: "Any book or long article", Points: 20},
	},
}

type ledgerKey struct {
	ChildID uuid.UUID
	Date    entity.Date
}

// DailyLedger remembers which daily tasks were generated for a child on a day.
// It lives as long as the process; the task store is the durable record.
type DailyLedger struct {
	mu      sync.Mutex
	entries map[ledgerKey][]uuid.UUID
}

func NewDailyLedger() *DailyLedger {
	return &DailyLedger{
		entries: make(map[ledgerKey][]uuid.UUID),
	}
}

func (l *DailyLedger) Lookup(childID uuid.UUID, date entity.Date) ([]uuid.UUID, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids, ok := l.entries[ledgerKey{ChildID: childID, Date: date}]
	return ids, ok
}

func (l *DailyLedger) Record(childID uuid.UUID, date entity.Date, ids []uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[ledgerKey{ChildID: childID, Date: date}] = append([]uuid.UUID(nil), ids...)
}

// Prune drops entries for days before date.
func (l *DailyLedger) Prune(date entity.Date) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k := range l.entries {
		if k.Date.Before(date) {
			delete(l.entries, k)
		}
	}
}

type DailyTaskGenerator struct {
	dates   *DateProvider
	ledger  *DailyLedger
	catalog map[entity.AgeGroup][]CatalogTask
}

func NewDailyTaskGenerator(dates *DateProvider, ledger *DailyLedger) *DailyTaskGenerator {
	if ledger == nil {
		ledger = NewDailyLedger()
	}
	return &DailyTaskGenerator{
		dates:   dates,
		ledger:  ledger,
		catalog: defaultCatalog,
	}
}

// DailyPlan is a day's set for one child. Carried are earlier unfinished
// daily tasks moved to the new day, keeping their ids. Created are new rows.
type DailyPlan struct {
	Carried []*entity.Task
	Created []*entity.Task
}

// Tasks returns the whole set, carried first.
func (p *DailyPlan) Tasks() []*entity.Task {
	if p == nil {
		return nil
	}
	out := make([]*entity.Task, 0, len(p.Carried)+len(p.Created))
	out = append(out, p.Carried...)
	return append(out, p.Created...)
}

// Plan returns the daily set to save for child on today, or nil when that
// day's set already exists. existing holds every task the child owns.
func (g *DailyTaskGenerator) Plan(child *entity.Child, tier entity.Tier, today entity.Date, existing []*entity.Task) *DailyPlan {
	if _, ok := g.ledger.Lookup(child.ID, today); ok {
		return nil
	}
	var todays []uuid.UUID
	for _, t := range existing {
		if t.Origin == entity.OriginDaily && t.DueDate == today {
			todays = append(todays, t.ID)
		}
	}
	if len(todays) > 0 {
		g.ledger.Record(child.ID, today, todays)
		return nil
	}

	count := DailyTaskCount(tier)
	now := g.dates.Now()
	chosen := make(map[string]bool, count)
	plan := &DailyPlan{}
	size := func() int { return len(plan.Carried) + len(plan.Created) }

	for _, t := range unfinishedDaily(existing, today) {
		if size() == count {
			break
		}
		if chosen[t.Title] {
			continue
		}
		chosen[t.Title] = true
		moved := t.Clone()
		moved.DueDate = today
		moved.UpdatedAt = now
		plan.Carried = append(plan.Carried, moved)
	}

	catalog := g.catalog[child.AgeGroup]
	if len(catalog) > 0 {
		offset := today.DaysSince(entity.Date{Year: 2000, Month: 1, Day: 1}) % len(catalog)
		for i := 0; i < len(catalog) && size() < count; i++ {
			item := catalog[(offset+i)%len(catalog)]
			if chosen[item.Title] {
				continue
			}
			chosen[item.Title] = true
			plan.Created = append(plan.Created, &entity.Task{
				ID:          uuid.New(),
				ChildID:     child.ID,
				Title:       item.Title,
				Description: item.Description,
				Points:      item.Points,
				Status:      entity.StatusPending,
				Origin:      entity.OriginDaily,
				DueDate:     today,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}
	return plan
}

// Commit marks the set for child on date as generated. date must be the day
// Plan was called for, so a rollover in between does not mislabel the set.
func (g *DailyTaskGenerator) Commit(childID uuid.UUID, date entity.Date, tasks []*entity.Task) {
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	g.ledger.Record(childID, date, ids)
}

// unfinishedDaily returns earlier daily tasks still pending, newest first.
func unfinishedDaily(existing []*entity.Task, today entity.Date) []*entity.Task {
	var out []*entity.Task
	for _, t := range existing {
		if t.Origin == entity.OriginDaily && t.Status == entity.StatusPending && t.DueDate.Before(today) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].DueDate.Before(out[i].DueDate)
	})
	return out
}
