package catalog

import (
	"net/url"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/domain"
)

// structToParams flattens a request struct into query parameters.
// Strings are taken as is, numbers and booleans are formatted, nulls are skipped.
func structToParams(s *structpb.Struct) (url.Values, error) {
	params := url.Values{}
	for key, value := range s.GetFields() {
		switch v := value.GetKind().(type) {
		case *structpb.Value_StringValue:
			params.Set(key, v.StringValue)
		case *structpb.Value_NumberValue:
			params.Set(key, strconv.FormatFloat(v.NumberValue, 'f', -1, 64))
		case *structpb.Value_BoolValue:
			params.Set(key, strconv.FormatBool(v.BoolValue))
		case *structpb.Value_NullValue, nil:
		default:
			return nil, status.Errorf(codes.InvalidArgument, "%s: must be a scalar", key)
		}
	}
	return params, nil
}

func viewsToList(views []domain.View) []interface{} {
	list := make([]interface{}, 0, len(views))
	for _, v := range views {
		list = append(list, map[string]interface{}(v))
	}
	return list
}
