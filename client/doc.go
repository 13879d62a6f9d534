// Package client provides a typed client for the welcome service, intended
// for frontend gateways and test harnesses that submit lead-capture forms.
//
// Submit never returns an error: every outcome folds into a Result, an
// enum-like type constructed only via Success and Failure. Callers update
// submitted-state UI by matching on the success variant:
//
//	c, err := client.New("https://api.example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := c.Submit(ctx, welcome.Submission{
//		Name:     "Ava",
//		Email:    "ava@example.com",
//		Industry: "fintech",
//	})
//
//	if emailID, ok := result.OK(); ok {
//		markSubmitted(emailID)
//	} else {
//		showError(result.ErrorMessage())
//	}
//
// Transport failures, non-2xx statuses and error payloads are all Failures,
// so prior form state survives every error path by construction.
package client
