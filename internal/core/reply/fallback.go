package reply

import "fmt"

// fallbackTemplates are the canned replies used when the model is unavailable
// after retries. Keep the count at 3: the selector is part of the contract.
var fallbackTemplates = [3]string{
	"Thank you so much for taking the time to share your experience, %s! Your feedback means a lot to us and we hope to welcome you back soon. — The Team",
	"Hi %s, thank you for your review. We really appreciate you letting us know how we did, and we are always working to improve. — The Team",
	"We appreciate the feedback, %s! Every review helps us serve our community better. We hope to see you again soon. — The Team",
}

// SelectFallback picks a canned reply by reviewer-name length. Not random on
// purpose: the same reviewer always gets the same fallback text.
func SelectFallback(reviewerName string) string {
	tmpl := fallbackTemplates[len(reviewerName)%len(fallbackTemplates)]
	return fmt.Sprintf(tmpl, reviewerName)
}
