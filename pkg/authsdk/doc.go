/*
Package authsdk provides a client SDK for the doorkey authentication service.

The SDKClient keeps a cookie jar, so the session cookie issued by Signup or
Login is carried on subsequent calls automatically:

	client, err := authsdk.NewSDKClient("https://auth.example.com")
	if err != nil {
		return err
	}

	resp, err := client.Signup(ctx, authsdk.SignupRequest{
		Email:    "fred@example.com",
		Password: "hunter22",
		Name:     "Fred",
	})

	// The session cookie is now set; authenticated calls just work.
	me, err := client.Me(ctx)

Error responses are returned as *APIError carrying the HTTP status code and
the server's message.
*/
package authsdk
