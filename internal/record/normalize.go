package record

import "sort"

// Normalize merges records sharing the same (student, date, topic) key by
// summing their attempted and correct counts, and returns the merged rows
// sorted by student, date, then topic.
//
// Rows with Attempted == 0 are kept: downstream a topic attempted zero
// times must stay distinguishable from one answered entirely wrong.
// Normalize is idempotent — running it over its own output is a no-op.
func Normalize(records []Record) ([]Record, error) {
	merged := make(map[Key]Record, len(records))
	order := make([]Key, 0, len(records))

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		k := r.Key()
		if got, ok := merged[k]; ok {
			got.Attempted += r.Attempted
			got.Correct += r.Correct
			merged[k] = got
			continue
		}
		merged[k] = r
		order = append(order, k)
	}

	out := make([]Record, 0, len(order))
	for _, k := range order {
		out = append(out, merged[k])
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.StudentID != b.StudentID {
			return a.StudentID < b.StudentID
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Topic < b.Topic
	})
	return out, nil
}
