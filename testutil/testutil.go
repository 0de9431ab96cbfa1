package testutil

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/peergo/model"
)

var (
	infoTypes = []string{"NSP", "Content", "Cable/DSL/ISP", "Enterprise", "Educational/Research", "Non-Profit"}
	policies  = []string{"Open", "Selective", "Restrictive", "No"}
	scopes    = []string{"Global", "Regional", "North America", "Europe", "Asia Pacific"}
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// GenerateNetworks produces num synthetic registry records with sequential
// ids starting at 1. Roughly one record in five has each optional field
// absent, mirroring the sparseness of real registry data.
func (r *RNG) GenerateNetworks(num int) []model.Network {
	networks := make([]model.Network, num)
	for i := range networks {
		n := model.Network{ID: int64(i + 1)}

		if r.Intn(5) != 0 {
			name := fmt.Sprintf("Network %d", i+1)
			n.Name = &name
		}
		if r.Intn(5) != 0 {
			asn := int64(64512 + i)
			n.ASN = &asn
		}
		if r.Intn(5) != 0 {
			it := infoTypes[r.Intn(len(infoTypes))]
			n.InfoType = &it
		}
		if r.Intn(5) != 0 {
			p := policies[r.Intn(len(policies))]
			n.PolicyGeneral = &p
		}
		if r.Intn(5) != 0 {
			s := scopes[r.Intn(len(scopes))]
			n.InfoScope = &s
		}
		if r.Intn(5) != 0 {
			v4 := int64(r.Intn(10000))
			v6 := int64(r.Intn(2000))
			n.InfoPrefixes4 = &v4
			n.InfoPrefixes6 = &v6
		}
		if r.Intn(5) != 0 {
			ix := int64(r.Intn(50))
			fac := int64(r.Intn(100))
			n.IXCount = &ix
			n.FacCount = &fac
		}

		networks[i] = n
	}

	return networks
}

// Payload wraps records in the registry export envelope, ready to be
// stored as a snapshot blob.
func Payload(networks []model.Network) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"data":[`)

	for i, n := range networks {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeNetwork(&buf, &n)
	}

	buf.WriteString(`]}`)
	return buf.Bytes()
}

func writeNetwork(buf *bytes.Buffer, n *model.Network) {
	fmt.Fprintf(buf, `{"id":%d`, n.ID)
	if n.Name != nil {
		fmt.Fprintf(buf, `,"name":%q`, *n.Name)
	}
	if n.ASN != nil {
		fmt.Fprintf(buf, `,"asn":%d`, *n.ASN)
	}
	if n.InfoType != nil {
		fmt.Fprintf(buf, `,"info_type":%q`, *n.InfoType)
	}
	if n.PolicyGeneral != nil {
		fmt.Fprintf(buf, `,"policy_general":%q`, *n.PolicyGeneral)
	}
	if n.InfoScope != nil {
		fmt.Fprintf(buf, `,"info_scope":%q`, *n.InfoScope)
	}
	if n.InfoPrefixes4 != nil {
		fmt.Fprintf(buf, `,"info_prefixes4":%d`, *n.InfoPrefixes4)
	}
	if n.InfoPrefixes6 != nil {
		fmt.Fprintf(buf, `,"info_prefixes6":%d`, *n.InfoPrefixes6)
	}
	if n.IXCount != nil {
		fmt.Fprintf(buf, `,"ix_count":%d`, *n.IXCount)
	}
	if n.FacCount != nil {
		fmt.Fprintf(buf, `,"fac_count":%d`, *n.FacCount)
	}
	buf.WriteByte('}')
}
