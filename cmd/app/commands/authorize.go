package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/domgiordano/xomper-back-end/internal/authorizer"
)

// RunAuthorize evaluates a credential against a method ARN and prints the
// resulting policy document. Useful for inspecting gate decisions without a
// running server.
func RunAuthorize(ctx context.Context, gate *authorizer.Authorizer, token, arn string, io IOTuple) error {
	resp := gate.Authorize(ctx, authorizer.Request{
		MethodArn: arn,
		Token:     token,
	})

	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode policy document: %w", err)
	}

	fmt.Fprintln(io.Writer, string(encoded))
	return nil
}
