package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

func reportWindow(period string, now time.Time) (time.Time, time.Time, error) {
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		return start, end, nil
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
		start := end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		return start, end, nil
	case "month":
		return now.AddDate(0, 0, -30).Truncate(24 * time.Hour), now.Add(24 * time.Hour), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("period must be day, week, or month")
}

func boldHeaderRow(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}
}

// GET /v1/admin/exports/payments
// Download the verified-payments ledger as Excel.
func DownloadPaymentsExcel(c *gin.Context) {
	utils.LogInfo("DownloadPaymentsExcel called")

	period := c.DefaultQuery("period", "month")
	startDate, endDate, err := reportWindow(period, time.Now())
	if err != nil {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", err.Error())
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d payments for Excel report", len(payments))

	var totalPaise int64
	for _, p := range payments {
		totalPaise += p.Amount
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(strings.ToUpper(utils.AppName) + " - Payments Ledger")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " +
		startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow() // spacing

	boldHeaderRow(sheet, []string{"Payment ID", "User ID", "Plan ID", "Order ID", "Gateway Payment ID", "Amount (Rs)", "Status", "Date"})

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetInt(int(p.UserID))
		row.AddCell().SetInt(int(p.PlanID))
		row.AddCell().SetString(p.RazorpayOrderID)
		row.AddCell().SetString(p.RazorpayPaymentID)
		row.AddCell().SetFloat(float64(p.Amount) / 100)
		row.AddCell().SetString(p.Status)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04"))
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total Payments")
	summaryRow.AddCell().SetInt(len(payments))
	revenueRow := sheet.AddRow()
	revenueRow.AddCell().SetString("Total Revenue (Rs)")
	revenueRow.AddCell().SetFloat(float64(totalPaise) / 100)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Generated payments Excel report for period %s", period)
}

// GET /v1/admin/exports/vendors
// Download the vendor register as Excel, optionally filtered by status.
func DownloadVendorsExcel(c *gin.Context) {
	utils.LogInfo("DownloadVendorsExcel called")

	query := config.DB.Model(&models.Vendor{}).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var vendors []models.Vendor
	if err := query.Find(&vendors).Error; err != nil {
		utils.LogError("Failed to fetch vendors: %v", err)
		utils.InternalServerError(c, "Failed to fetch vendors", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d vendors for Excel report", len(vendors))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Vendors")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(strings.ToUpper(utils.AppName) + " - Vendor Register")
	sheet.AddRow() // spacing

	boldHeaderRow(sheet, []string{"ID", "Company", "Owner", "Email", "Mobile", "City", "Sector", "Plan", "Status", "Registered"})

	for _, v := range vendors {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(v.ID))
		row.AddCell().SetString(v.CompanyName)
		row.AddCell().SetString(v.OwnerName)
		row.AddCell().SetString(v.Email)
		row.AddCell().SetString(v.MobileNumber)
		row.AddCell().SetString(v.City)
		row.AddCell().SetString(v.Sector)
		row.AddCell().SetString(v.SubscriptionPlan)
		row.AddCell().SetString(v.Status)
		row.AddCell().SetString(v.CreatedAt.Format("2006-01-02"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=vendors.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Generated vendor register Excel report")
}
