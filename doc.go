// Package paykit is a typed Go client for the Paykit payments platform
// REST API.
//
// The client wraps every call in a resilient request pipeline: bearer
// authentication, JSON encoding with explicit enum wire tokens, retry with
// exponential backoff and jitter for transient failures, Retry-After
// awareness, and an advisory client-side request budget. Failed responses
// surface as *apierror.APIError values carrying the status code, message,
// machine-readable type, and raw body.
//
//	client, err := paykit.New("pk_live_...",
//	    paykit.WithEnvironment(paykit.EnvironmentSandbox),
//	)
//	if err != nil {
//	    // handle
//	}
//
//	payment, err := client.Payments.Create(ctx, paykit.CreatePaymentRequest{
//	    CustomerID: "cus_123",
//	    Amount:     1900,
//	    Currency:   "USD",
//	})
//
// List endpoints return lazy iterators that walk pages on demand:
//
//	for customer, err := range client.Customers.List(ctx, 0) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(customer.Email)
//	}
//
// Inbound webhook verification lives in pkg/webhook.
package paykit
