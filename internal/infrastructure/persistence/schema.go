package persistence

import (
	"github.com/erp/mfgdesk/internal/domain/document"
	"github.com/erp/mfgdesk/internal/domain/master"
	"github.com/erp/mfgdesk/internal/domain/record"
)

// DefaultNormalizer maps every legacy field name known for parties, items and
// the five document kinds onto the current record schema.
func DefaultNormalizer() *record.Normalizer {
	n := record.NewNormalizer().
		ForCollection(master.PartyCollection, master.PartyLegacyFields()).
		ForCollection(master.ItemCollection, master.ItemLegacyFields())
	for _, k := range document.AllKinds() {
		n.ForBucket(k.Bucket(), document.LegacyFields(k))
	}
	return n
}
