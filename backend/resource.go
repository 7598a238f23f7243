package backend

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is a plain REST collection on the backend: list, read, create,
// update and delete by id.
type Resource[T any] struct {
	client *Client
	path   string
}

func (r Resource[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	var items []T
	if err := r.client.doJSON(ctx, http.MethodGet, r.path, query, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	err := r.client.doJSON(ctx, http.MethodGet, r.path+"/"+escape(id), nil, nil, &item)
	return item, err
}

func (r Resource[T]) Create(ctx context.Context, in T) (T, error) {
	var out T
	err := r.client.doJSON(ctx, http.MethodPost, r.path, nil, in, &out)
	return out, err
}

func (r Resource[T]) Update(ctx context.Context, id string, in T) (T, error) {
	var out T
	err := r.client.doJSON(ctx, http.MethodPut, r.path+"/"+escape(id), nil, in, &out)
	return out, err
}

func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.doJSON(ctx, http.MethodDelete, r.path+"/"+escape(id), nil, nil, nil)
}
