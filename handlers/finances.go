package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// financesCSVHeader is the fixed export layout. Column order is part of
// the contract with the finance spreadsheets downstream.
var financesCSVHeader = []string{
	"Order ID",
	"Date",
	"Restaurant",
	"Customer",
	"Items",
	"Subtotal",
	"Delivery Fee",
	"Total",
	"Payment Method",
	"Payment Status",
	"Order Status",
	"Delivery Address",
	"Completed At",
}

// financeQuery applies the shared finance filters: date range,
// restaurant, payment status and method.
func financeQuery(c *gin.Context) (*gorm.DB, error) {
	query := config.DB.Model(&models.Order{}).
		Preload("Items").Preload("Customer").Preload("Restaurant")

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, err
		}
		query = query.Where("created_at >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, err
		}
		// inclusive end of day
		query = query.Where("created_at < ?", t.AddDate(0, 0, 1))
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if paymentMethod := c.Query("payment_method"); paymentMethod != "" {
		query = query.Where("payment_method = ?", paymentMethod)
	}
	return query, nil
}

// AdminListFinances returns the filtered order ledger with totals
func AdminListFinances(c *gin.Context) {
	query, err := financeQuery(c)
	if err != nil {
		failValidation(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)

	var totalRevenue, totalFees float64
	for _, o := range orders {
		if o.Status == models.StatusCompleted {
			totalRevenue += o.TotalPrice
			totalFees += o.DeliveryFee
		}
	}

	respondOK(c, http.StatusOK, gin.H{
		"count":          len(orders),
		"total_revenue":  totalRevenue,
		"delivery_fees":  totalFees,
		"orders":         orders,
	}, "")
}

// AdminExportFinancesCSV streams the filtered ledger as CSV
func AdminExportFinancesCSV(c *gin.Context) {
	query, err := financeQuery(c)
	if err != nil {
		failValidation(c, "Invalid date filter, expected YYYY-MM-DD")
		return
	}

	var orders []models.Order
	query.Order("created_at asc").Find(&orders)

	filename := "finances-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(financesCSVHeader); err != nil {
		return
	}
	for _, o := range orders {
		completedAt := ""
		if o.CompletedAt != nil {
			completedAt = o.CompletedAt.Format(time.RFC3339)
		}
		record := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.CreatedAt.Format(time.RFC3339),
			o.Restaurant.Name,
			o.Customer.Name,
			strconv.Itoa(len(o.Items)),
			formatAmount(o.Subtotal),
			formatAmount(o.DeliveryFee),
			formatAmount(o.TotalPrice),
			string(o.PaymentMethod),
			string(o.PaymentStatus),
			string(o.Status),
			o.DeliveryAddress,
			completedAt,
		}
		if err := writer.Write(record); err != nil {
			return
		}
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
