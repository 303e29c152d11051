package memory

import (
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
)

// QueryRecord is one answered request kept for the recent-queries endpoint.
type QueryRecord struct {
	Id         string
	Query      string
	Answer     string
	MatchCount int
	DurationMs int64
	CreatedAt  time.Time
}

// QueryLogRepository keeps a short-lived in-memory log of answered queries.
// Purely observational; the pipeline never reads from it.
type QueryLogRepository struct {
	cache *cache.Cache
}

func NewQueryLogRepository() *QueryLogRepository {
	// Entries expire after 1 hour; expired items are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &QueryLogRepository{
		cache: c,
	}
}

func (r *QueryLogRepository) Save(record *QueryRecord) {
	r.cache.Set(record.Id, record, cache.DefaultExpiration)
}

// Recent returns the newest records first, at most limit of them.
func (r *QueryLogRepository) Recent(limit int) []*QueryRecord {
	items := r.cache.Items()
	records := make([]*QueryRecord, 0, len(items))
	for _, item := range items {
		if rec, ok := item.Object.(*QueryRecord); ok {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
