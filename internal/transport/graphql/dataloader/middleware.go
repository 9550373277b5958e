package dataloader

import "net/http"

// Middleware attaches a fresh set of loaders to every request context.
// Loader caches must not outlive the request, or one client's feedback
// lists would leak into another's.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
