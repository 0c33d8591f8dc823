package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/reviewpilot/review-pilot-be/internal/modules/reviews/models"
)

var topicsList = []string{"Food", "Service", "Price", "Ambiance", "Cleanliness", "Staff", "Speed", "Parking", "Music", "Drinks"}

var namesList = []string{
	"Alice", "Bob", "Charlie", "David", "Emma", "Frank", "Grace", "Henry", "Ivy", "Jack",
	"Kate", "Liam", "Mia", "Noah", "Olivia", "Peter", "Quinn", "Ryan", "Sophia", "Thomas",
	"James", "Lucas", "Ethan", "Alexander", "Isabella", "Ava", "Charlotte", "Amelia", "Harper",
}

var positiveFood = []string{
	"The pasta was absolutely divine!", "Best pizza I have had in years.", "The truffle fries are a must-try.",
	"Incredible extensive menu.", "Dessert was the highlight of the night.", "Fresh ingredients and great presentation.",
	"Flavor explosion in every bite!",
}

var positiveService = []string{
	"The staff went above and beyond.", "Our server was so attentive and kind.", "Received a warm welcome upon entering.",
	"Service was quick despite the busy rush.", "Everyone had a smile on their face.", "Felt treated like royalty.",
}

var positiveAmbiance = []string{
	"Love the cozy vibe here.", "Perfect lighting for a date night.", "Great music playlist!",
	"The decor is stunning.", "Very clean and organized.", "A truly relaxing atmosphere.",
}

var neutralMixed = []string{
	"Food was good but the service was slow.", "Decent place, but a bit pricey for the portion size.",
	"Nice atmosphere, but the music was too loud.", "It was okay, nothing to write home about.",
	"Standard experience, met expectations.", "Good for a quick bite, but not a special occasion.",
	"The main course was great, but appetizers were cold.",
}

var negativeIssues = []string{
	"Waited over 45 minutes for our table.", "The food arrived cold and tasteless.", "Rude staff member at the front desk.",
	"Way too expensive for the quality.", "Tables were sticky and dirty.", "Order was completely wrong.",
	"Impossible to find parking nearby.", "Never coming back, terrible experience.",
}

func pick(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

// GenerateMockReviews produces a weighted mix of mock reviews for demo
// seeding: roughly 65% positive, 20% neutral, 15% negative, spread over the
// last six months.
func GenerateMockReviews(businessID uuid.UUID, count int) []models.Review {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		roll := r.Float64()

		var sentiment models.Sentiment
		var rating int
		var content string

		switch {
		case roll > 0.35: // 65% positive
			sentiment = models.SentimentPositive
			rating = 4
			if r.Float64() > 0.7 {
				rating = 5
			}
			kind := r.Float64()
			switch {
			case kind < 0.5:
				content = pick(r, positiveFood)
			case kind < 0.8:
				content = pick(r, positiveService)
			default:
				content = pick(r, positiveAmbiance)
			}
			if r.Float64() > 0.8 {
				content += " Highly recommended!"
			}
		case roll > 0.15: // 20% neutral
			sentiment = models.SentimentNeutral
			rating = 3
			content = pick(r, neutralMixed)
		default: // 15% negative
			sentiment = models.SentimentNegative
			rating = 1
			if r.Float64() > 0.5 {
				rating = 2
			}
			content = pick(r, negativeIssues)
		}

		// Random date within the last ~180 days
		daysAgo := r.Intn(180)
		timeOffset := time.Duration(r.Intn(12)) * time.Hour
		postedAt := now.Add(-time.Duration(daysAgo)*24*time.Hour - timeOffset)

		// 1 to 3 unique topics
		topicSet := map[string]bool{}
		for j := 0; j < 1+r.Intn(3); j++ {
			topicSet[pick(r, topicsList)] = true
		}
		topics := make([]string, 0, len(topicSet))
		for t := range topicSet {
			topics = append(topics, t)
		}
		sort.Strings(topics)

		status := models.StatusPending
		switch {
		case r.Float64() > 0.7:
			status = models.StatusReplied
		case r.Float64() > 0.5:
			status = models.StatusDraft
		}

		reviews = append(reviews, models.Review{
			BusinessID:   businessID,
			ReviewerName: fmt.Sprintf("%s %c.", pick(r, namesList), 'A'+rune(r.Intn(26))),
			StarRating:   rating,
			Content:      content,
			Status:       status,
			PostedAt:     postedAt,
			Sentiment:    sentiment,
			Topics:       topics,
		})
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].PostedAt.After(reviews[j].PostedAt)
	})
	return reviews
}
