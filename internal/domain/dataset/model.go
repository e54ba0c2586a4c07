package dataset

import (
	"strconv"
	"strings"
)

// CustomerRecord is one row of the precomputed RFM segmentation output.
// The slice held by the Store is read-only after labeling; derived views are
// built per request and never mutate it.
type CustomerRecord struct {
	CustomerID   string  `json:"customer_id"`
	Recency      float64 `json:"recency"`
	Frequency    float64 `json:"frequency"`
	Monetary     float64 `json:"monetary"`
	FrequencyLog float64 `json:"frequency_log"`
	MonetaryLog  float64 `json:"monetary_log"`
	Cluster      string  `json:"cluster"`
	Persona      string  `json:"persona"`
}

// Column names expected from any dataset source.
const (
	ColCustomerID   = "CustomerID"
	ColRecency      = "Recency"
	ColFrequency    = "Frequency"
	ColMonetary     = "Monetary"
	ColFrequencyLog = "Frequency_log"
	ColMonetaryLog  = "Monetary_log"
	ColCluster      = "Cluster"
)

// Columns lists the required source columns in canonical order.
func Columns() []string {
	return []string{
		ColCustomerID,
		ColRecency,
		ColFrequency,
		ColMonetary,
		ColFrequencyLog,
		ColMonetaryLog,
		ColCluster,
	}
}

// NormalizeCluster coerces a cluster cell to its textual code. Sources store
// the code as an integer, a float, or text depending on how the upstream job
// wrote it; "3", "3.0", and " 3 " all normalize to "3". The Store applies
// this to every row before labeling.
func NormalizeCluster(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
