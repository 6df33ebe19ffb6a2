package Controllers

import (
	"sort"
	"strings"

	"FleetOffice/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Label for container groups whose originals carry no customer
// reconciliation reference. Sorts last in the bucket view.
const unreconciledLabel = "Chưa đối chiếu"

// RefundController maintains refund entries and serves the pay-on-behalf
// reconciliation projection.
type RefundController struct {
	DB *gorm.DB
}

func NewRefundController(db *gorm.DB) *RefundController {
	return &RefundController{DB: db}
}

// ReconFilter narrows the reconciliation view. All filters are optional and
// AND-combined; substring matches are case-insensitive.
type ReconFilter struct {
	From           string
	To             string
	Container      string
	Warehouse      string
	Reconciliation string
}

type enrichedSlip struct {
	Models.PayOnBehalfSlip
	Original *Models.PayOnBehalf `json:"original,omitempty"`
}

// ContainerGroup aggregates every filtered slip for one container and
// compares the disbursed total against the refund recorded for it.
// DiffAmount is refund minus disbursed: negative means under-refunded.
type ContainerGroup struct {
	ContainerNo            string         `json:"container_no"`
	CustomerReconciliation string         `json:"customer_reconciliation"`
	Slips                  []enrichedSlip `json:"slips"`
	TotalPobAmount         float64        `json:"total_pob_amount"`
	SlipCount              int            `json:"slip_count"`
	LastSlipDate           string         `json:"last_slip_date"`
	RefundDate             string         `json:"refund_date"`
	RefundAmount           float64        `json:"refund_amount"`
	DiffAmount             float64        `json:"diff_amount"`
}

// ReconBucket is the second-level grouping by customer reconciliation
// reference, used for display ordering with bucket totals.
type ReconBucket struct {
	Key         string           `json:"key"`
	Items       []ContainerGroup `json:"items"`
	TotalPob    float64          `json:"total_pob"`
	TotalRefund float64          `json:"total_refund"`
	TotalDiff   float64          `json:"total_diff"`
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// buildReconciliation recomputes the projection from scratch on every call:
// join slips to originals by ref id, filter, group by the slip's snapshotted
// container number, then merge each group with its refund entry. Slips whose
// original is gone simply join to nothing and still group off their own
// container number; slips with no container number are dropped.
func buildReconciliation(db *gorm.DB, filter ReconFilter) []ReconBucket {
	var slips []Models.PayOnBehalfSlip
	var originals []Models.PayOnBehalf
	var refunds []Models.RefundEntry
	db.Find(&slips)
	db.Find(&originals)
	db.Find(&refunds)

	originalsByID := make(map[uint]*Models.PayOnBehalf, len(originals))
	for i := range originals {
		originalsByID[originals[i].ID] = &originals[i]
	}
	refundsByContainer := make(map[string]Models.RefundEntry, len(refunds))
	for _, r := range refunds {
		refundsByContainer[r.ContainerNo] = r
	}

	groups := make(map[string]*ContainerGroup)
	for _, slip := range slips {
		original := originalsByID[slip.RefID]

		if filter.From != "" && slip.Date < filter.From {
			continue
		}
		if filter.To != "" && slip.Date > filter.To {
			continue
		}
		if filter.Container != "" && !containsFold(slip.ContainerNo, filter.Container) {
			continue
		}
		if filter.Reconciliation != "" {
			if original == nil || !containsFold(original.CustomerReconciliation, filter.Reconciliation) {
				continue
			}
		}
		if filter.Warehouse != "" {
			if original == nil || !containsFold(original.Warehouse, filter.Warehouse) {
				continue
			}
		}

		cont := slip.ContainerNo
		if cont == "" {
			continue
		}

		group, ok := groups[cont]
		if !ok {
			group = &ContainerGroup{ContainerNo: cont, LastSlipDate: slip.Date}
			groups[cont] = group
		}
		group.Slips = append(group.Slips, enrichedSlip{PayOnBehalfSlip: slip, Original: original})
		group.TotalPobAmount += slip.Amount
		group.SlipCount++
		if slip.Date > group.LastSlipDate {
			group.LastSlipDate = slip.Date
		}
		if group.CustomerReconciliation == "" && original != nil {
			group.CustomerReconciliation = original.CustomerReconciliation
		}
	}

	buckets := make(map[string]*ReconBucket)
	for _, group := range groups {
		if refund, ok := refundsByContainer[group.ContainerNo]; ok {
			group.RefundAmount = refund.RefundAmount
			group.RefundDate = refund.RefundDate
		}
		group.DiffAmount = group.RefundAmount - group.TotalPobAmount

		sort.Slice(group.Slips, func(i, j int) bool {
			return group.Slips[i].Date < group.Slips[j].Date
		})

		key := group.CustomerReconciliation
		if key == "" {
			key = unreconciledLabel
			group.CustomerReconciliation = unreconciledLabel
		}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &ReconBucket{Key: key}
			buckets[key] = bucket
		}
		bucket.Items = append(bucket.Items, *group)
		bucket.TotalPob += group.TotalPobAmount
		bucket.TotalRefund += group.RefundAmount
		bucket.TotalDiff += group.DiffAmount
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == unreconciledLabel {
			return false
		}
		if keys[j] == unreconciledLabel {
			return true
		}
		return keys[i] < keys[j]
	})

	result := make([]ReconBucket, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		sort.Slice(bucket.Items, func(i, j int) bool {
			return bucket.Items[i].LastSlipDate > bucket.Items[j].LastSlipDate
		})
		result = append(result, *bucket)
	}
	return result
}

func reconFilterFromQuery(c *fiber.Ctx) ReconFilter {
	return ReconFilter{
		From:           c.Query("from"),
		To:             c.Query("to"),
		Container:      c.Query("container"),
		Warehouse:      c.Query("warehouse"),
		Reconciliation: c.Query("recon"),
	}
}

// GetReconciliation serves the bucketed container view.
func (ctl *RefundController) GetReconciliation(c *fiber.Ctx) error {
	return c.JSON(buildReconciliation(ctl.DB, reconFilterFromQuery(c)))
}

func (ctl *RefundController) GetRefundEntries(c *fiber.Ctx) error {
	var entries []Models.RefundEntry
	if err := ctl.DB.Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

// SaveRefundEntry records (or overwrites) the refund for a container.
func (ctl *RefundController) SaveRefundEntry(c *fiber.Ctx) error {
	var entry Models.RefundEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if entry.ContainerNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Container number is required"})
	}
	if err := Models.SaveRefundEntry(ctl.DB, entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	var saved Models.RefundEntry
	ctl.DB.Where("container_no = ?", entry.ContainerNo).First(&saved)
	return c.JSON(saved)
}
