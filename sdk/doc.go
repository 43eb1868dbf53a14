// Package sdk is the public entry point for LNURL pay and withdraw flows.
//
// Every exported operation returns an errors.Error: either errors.InvoiceError,
// carrying the invoice library's message, or errors.UnclassifiedError.
// Internal detail of a failure is logged and traced before it is collapsed.
//
// # Usage
//
//	cfg, err := sdk.LoadConfig("wallet")
//	if err != nil {
//	    return err
//	}
//	client, err := sdk.New(*cfg, myDecoder)
//	if err != nil {
//	    return err
//	}
//	pr, sdkErr := client.FetchPayRequest(ctx, "alice@pay.example")
//	if errors.IsInvoice(sdkErr) {
//	    // show the invoice problem to the user
//	}
package sdk
