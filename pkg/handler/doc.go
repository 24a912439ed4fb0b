// Package handler provides type-safe HTTP handlers with a uniform JSON
// response envelope.
//
// HandlerFunc[C, R] pairs a context type with a bound request type; Wrap
// converts it into a standard http.HandlerFunc, running the configured
// binders and routing every failure through the error handler:
//
//	calculate := handler.HandlerFunc[handler.Context, CalculateRequest](
//	    func(ctx handler.Context, req CalculateRequest) handler.Response {
//	        result, err := svc.Calculate(ctx, req)
//	        if err != nil {
//	            return handler.JSONError(err)
//	        }
//	        return handler.JSON(result)
//	    },
//	)
//
//	r.Post("/api/commission/calculate", handler.Wrap(calculate,
//	    handler.WithBinder(binder.BindJSON()),
//	))
//
// Every response uses JSONEnvelope: {"success": true, "data": ...} on the
// happy path, {"success": false, "errors": [...]} otherwise. Validation
// errors render as 422 with one message per failed field, binder errors as
// 400, HTTPError values with their own status, and everything else as an
// opaque 500.
package handler
