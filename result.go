package textcluster

import (
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/textcluster/codec"
)

// Result is the partition produced by a clustering run.
type Result struct {
	// K is the number of clusters.
	K int
	// Attempts is the number of attempts until K non-empty clusters formed.
	Attempts int
	// Passes is the number of passes of the accepted attempt.
	Passes int
	// Converged reports whether the last pass reassigned no document.
	Converged bool
	// Documents lists the distinct original documents in input order.
	Documents []string
	// Labels maps every original document to its cluster index as a string.
	Labels map[string]string
	// Assignments maps every distinct normalized document to its cluster.
	Assignments map[string]int

	members []*roaring.Bitmap
}

func (r *Result) buildMembers() {
	r.members = make([]*roaring.Bitmap, r.K)
	for i := range r.members {
		r.members[i] = roaring.New()
	}
	for i, doc := range r.Documents {
		c, err := strconv.Atoi(r.Labels[doc])
		if err != nil || c < 0 || c >= r.K {
			continue
		}
		r.members[c].Add(uint32(i))
	}
}

// Label returns the cluster label of an original document.
func (r *Result) Label(doc string) (string, bool) {
	l, ok := r.Labels[doc]
	return l, ok
}

// Members returns the positions in Documents that belong to cluster c.
// The returned bitmap is a copy.
func (r *Result) Members(c int) *roaring.Bitmap {
	if c < 0 || c >= len(r.members) {
		return roaring.New()
	}
	return r.members[c].Clone()
}

// Sizes returns the number of original documents per cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.members))
	for i, m := range r.members {
		sizes[i] = int(m.GetCardinality())
	}
	return sizes
}

// Cluster returns the original documents of cluster c in input order.
func (r *Result) Cluster(c int) []string {
	m := r.Members(c)
	docs := make([]string, 0, m.GetCardinality())
	it := m.Iterator()
	for it.HasNext() {
		docs = append(docs, r.Documents[it.Next()])
	}
	return docs
}

// Report is the serialized form of a Result.
type Report struct {
	K         int               `json:"k"`
	Attempts  int               `json:"attempts"`
	Passes    int               `json:"passes"`
	Converged bool              `json:"converged"`
	Clusters  []ReportCluster   `json:"clusters"`
	Labels    map[string]string `json:"labels"`
}

// ReportCluster lists the members of one cluster.
type ReportCluster struct {
	Cluster   int      `json:"cluster"`
	Size      int      `json:"size"`
	Documents []string `json:"documents"`
}

// Report builds the serializable summary of r.
func (r *Result) Report() Report {
	rep := Report{
		K:         r.K,
		Attempts:  r.Attempts,
		Passes:    r.Passes,
		Converged: r.Converged,
		Clusters:  make([]ReportCluster, r.K),
		Labels:    r.Labels,
	}
	for c := range r.K {
		docs := r.Cluster(c)
		rep.Clusters[c] = ReportCluster{Cluster: c, Size: len(docs), Documents: docs}
	}
	return rep
}

// Encode serializes the report of r with c. If c is nil, codec.Default is used.
func (r *Result) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(r.Report())
}
