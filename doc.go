// Package vatify provides a Go client SDK for the Vatify VAT validation,
// rate-lookup and calculation service.
//
// Every operation performs exactly one round trip against the remote API;
// the SDK does no caching, retrying or rate limiting of its own. All
// failures (missing configuration, transport problems, non-2xx responses)
// surface as a single *Error tagged with its Origin.
//
// Basic usage:
//
//	client, err := vatify.New(os.Getenv("VATIFY_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.ValidateVAT(ctx, "DE123456789")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("valid:", result.Valid)
//
// AsyncClient offers the same surface without blocking the caller; each
// method returns a Call that resolves when the request completes:
//
//	async, _ := vatify.NewAsync(apiKey)
//	defer async.AClose()
//
//	de := async.Rates(ctx, "DE")
//	fr := async.Rates(ctx, "FR")
//	deRates, err := de.Wait(ctx)
package vatify
