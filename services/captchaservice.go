package services

import (
	"context"
	"fmt"
	"os"

	"taskly/dto"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// VerifyCaptcha runs a reCAPTCHA Enterprise assessment for a signup
// token. A nil result with a nil error means the token was rejected.
func VerifyCaptcha(ctx context.Context, token, action, userIPAddress, userAgent string) (*dto.AssessmentResult, error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT_ID")
	recaptchaKey := os.Getenv("RECAPTCHA_SITE_KEY")
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_2")

	client, err := recaptcha.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("creating reCAPTCHA client: %w", err)
	}
	defer client.Close()

	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", projectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       recaptchaKey,
				UserIpAddress: userIPAddress,
				UserAgent:     userAgent,
			},
		},
	}

	response, err := client.CreateAssessment(ctx, req)
	if err != nil {
		return nil, err
	}

	if response.TokenProperties == nil || !response.TokenProperties.Valid {
		if response.TokenProperties != nil {
			logrus.WithField("reason", response.TokenProperties.InvalidReason).Warn("captcha token invalid")
		}
		return nil, nil
	}

	if action != "" && response.TokenProperties.Action != action {
		logrus.WithFields(logrus.Fields{
			"expected": action,
			"got":      response.TokenProperties.Action,
		}).Warn("captcha action mismatch")
		return nil, nil
	}

	result := &dto.AssessmentResult{
		Action: response.TokenProperties.Action,
	}
	if response.RiskAnalysis != nil {
		result.Score = response.RiskAnalysis.Score

		if len(response.RiskAnalysis.Reasons) > 0 {
			reasons := make([]string, len(response.RiskAnalysis.Reasons))
			for i, reason := range response.RiskAnalysis.Reasons {
				reasons[i] = reason.String()
			}
			result.Reasons = reasons
		}
	}

	return result, nil
}
