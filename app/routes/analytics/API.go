package analytics

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/canteen"
)

func respondError(c *fiber.Ctx, err error) error {
	var nfErr *canteen.NotFoundError
	if errors.As(err, &nfErr) {
		return c.Status(404).JSON(fiber.Map{"error": nfErr.Error()})
	}
	log.Printf("Analytics request failed: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
}

func GetAdminAnalyticsAPI(c *fiber.Ctx, aggregator *canteen.Aggregator) error {
	stats, err := aggregator.AdminAnalytics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func GetClassAnalyticsAPI(c *fiber.Ctx, aggregator *canteen.Aggregator) error {
	stats, err := aggregator.ClassAnalytics(c.Params("classId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetDailyAnalyticsAPI reports one day's paid/unpaid/absent partition,
// defaulting to today when ?date= is omitted.
func GetDailyAnalyticsAPI(c *fiber.Ctx, aggregator *canteen.Aggregator) error {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := canteen.ParseDate(q)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		date = parsed
	}

	stats, err := aggregator.DailyAnalytics(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
