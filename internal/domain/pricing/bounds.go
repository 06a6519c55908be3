package pricing

import "github.com/sonsardina/framing-api/internal/domain/entity"

// MinDimension is the smallest side, in cm, any entry can be priced for
const MinDimension = 15

// CheckBounds validates a canonical size against the entry's max pair and
// the global minimum.
func CheckBounds(entry *entity.ListPrice, s Size) error {
	if max1, max2, ok := entry.MaxDimensions(); ok {
		if s.D1 > max1 || s.D2 > max2 {
			return &SizeError{
				EntryID:     entry.ID,
				Description: entry.Description,
				Requested:   s,
				Limit:       Size{D1: max1, D2: max2},
			}
		}
	}
	if s.D1 < MinDimension || s.D2 < MinDimension {
		return &SizeError{
			EntryID:     entry.ID,
			Description: entry.Description,
			Requested:   s,
			Limit:       Size{D1: MinDimension, D2: MinDimension},
			BelowMin:    true,
		}
	}
	return nil
}
