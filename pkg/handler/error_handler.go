package handler

// defaultErrorHandler renders every error through the JSON error envelope so
// clients always receive the same response shape.
func defaultErrorHandler[C Context](ctx C, err error) {
	resp := JSONError(err)
	// Rendering the envelope cannot reasonably fail twice; nothing sane is
	// left to do if it does.
	_ = resp.Render(ctx.ResponseWriter(), ctx.Request())
}
