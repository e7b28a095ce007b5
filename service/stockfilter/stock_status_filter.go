package stockfilter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"stockfilter.GO/model/api/searchcriteria"
	"stockfilter.GO/model/collection"
	"stockfilter.GO/model/entity/inventory"
)

const (
	// FieldStockStatus is the search criteria field this module handles.
	FieldStockStatus = "stock_status"

	// JoinAlias is the alias of the stock status join on the product collection.
	JoinAlias = "stock_status_filter"

	stockStatusTable = "cataloginventory_stock_status"
	logPrefix        = "StockStatusFilter::apply() - Error applying stock status filter: "
)

var errMalformedCollection = errors.New("collection has no select")

// Logger is the logging capability the filter needs. *zap.Logger satisfies it.
type Logger interface {
	Error(msg string, fields ...zap.Field)
}

// StockStatusFilter is the collection filter for stock_status. It joins the stock
// status index for one website/stock pair and restricts rows to the requested status.
type StockStatusFilter struct {
	logger    Logger
	websiteID uint16
	stockID   uint16
}

// Option configures a StockStatusFilter.
type Option func(*StockStatusFilter)

// WithStock overrides the website and stock the join is scoped to.
func WithStock(websiteID, stockID uint16) Option {
	return func(f *StockStatusFilter) {
		f.websiteID = websiteID
		f.stockID = stockID
	}
}

// NewStockStatusFilter creates the filter for single-source inventory
// (website 0, default stock). A nil logger discards errors.
func NewStockStatusFilter(logger Logger, opts ...Option) *StockStatusFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &StockStatusFilter{
		logger:    logger,
		websiteID: inventory.DefaultWebsiteID,
		stockID:   inventory.DefaultStockID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Apply adds the stock status join and predicate to c. It never panics: failures are
// logged once and reported as false.
func (f *StockStatusFilter) Apply(filter *searchcriteria.Filter, c *collection.Collection) (applied bool) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error(fmt.Sprintf("%s%v", logPrefix, r))
			applied = false
		}
	}()
	if err := f.apply(filter, c); err != nil {
		f.logger.Error(logPrefix + err.Error())
		return false
	}
	return true
}

func (f *StockStatusFilter) apply(filter *searchcriteria.Filter, c *collection.Collection) error {
	if filter == nil {
		return errors.New("nil filter")
	}
	if c == nil || c.Select() == nil {
		return errMalformedCollection
	}
	status := NormalizeStockStatus(filter.Value)

	sel := c.Select()
	cond := sel.MainAlias() + ".entity_id = " + JoinAlias + ".product_id" +
		" AND " + JoinAlias + ".website_id = ?" +
		" AND " + JoinAlias + ".stock_id = ?"

	if _, ok := sel.FromPart()[JoinAlias]; !ok {
		if err := sel.Join(stockStatusTable, JoinAlias, cond, f.websiteID, f.stockID); err != nil {
			return err
		}
	}
	sel.Where(JoinAlias+".stock_status = ?", status)
	return nil
}
