package requestdata

import "context"

type requestDataKeyType struct{}

var requestDataKey = requestDataKeyType{}

// RequestData is the authenticated actor identity resolved by the auth
// middleware, carried on the request context for the whole workflow.
type RequestData struct {
	UID       uint32
	RequestID string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
