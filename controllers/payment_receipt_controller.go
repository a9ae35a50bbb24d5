package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// GET /v1/user/payments/:id/receipt
// Generates a PDF receipt for one of the user's own ledger entries.
func DownloadPaymentReceipt(c *gin.Context) {
	utils.LogInfo("DownloadPaymentReceipt called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid payment ID", nil)
		return
	}

	var payment models.Payment
	if err := config.DB.Where("id = ? AND user_id = ?", paymentID, user.ID).First(&payment).Error; err != nil {
		utils.LogError("Payment not found for receipt - ID: %d, user: %d", paymentID, user.ID)
		utils.NotFound(c, "Payment not found")
		return
	}

	var plan models.SubscriptionPlan
	planName := "Subscription"
	if err := config.DB.First(&plan, payment.PlanID).Error; err == nil {
		planName = plan.Name
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Local Services Marketplace")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Receipt No: "+strconv.Itoa(int(payment.ID)))
	pdf.Cell(80, 8, "Date: "+payment.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Plan: "+planName)
	pdf.Cell(80, 8, "Status: "+payment.Status)
	pdf.Ln(8)
	pdf.Cell(140, 8, "Gateway Order: "+payment.RazorpayOrderID)
	pdf.Ln(8)
	pdf.Cell(140, 8, "Gateway Payment: "+payment.RazorpayPaymentID)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(100, 10, fmt.Sprintf("Amount Paid: Rs. %.2f", float64(payment.Amount)/100))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate receipt PDF for payment %d: %v", payment.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", payment.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
