// Package catalog は静的な商品カタログとカテゴリ構成を提供する。
// データはプロセス起動時に構築され、以後は読み取り専用として扱う。
package catalog

import (
	"strings"

	"github.com/hitoshi/smartcatalog/internal/model"
)

// Service は商品カタログの読み取りサービス。
type Service struct {
	products   []model.Product
	categories []model.Category
	byID       map[string]*model.Product
}

// NewService は組み込みデータセットからServiceを生成する。
func NewService() *Service {
	return newService(seedProducts(), seedCategories())
}

// NewServiceWithData は指定データからServiceを生成する。テスト用。
func NewServiceWithData(products []model.Product, categories []model.Category) *Service {
	return newService(products, categories)
}

func newService(products []model.Product, categories []model.Category) *Service {
	s := &Service{
		products:   products,
		categories: categories,
		byID:       make(map[string]*model.Product, len(products)),
	}
	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	return s
}

// ListAll は全商品を返す。
func (s *Service) ListAll() []model.Product {
	return s.products
}

// ListCategories は主カテゴリとサブカテゴリの構成を返す。
func (s *Service) ListCategories() []model.Category {
	return s.categories
}

// FindByID は指定IDの商品を返す。見つからない場合はnilを返す。
func (s *Service) FindByID(id string) *model.Product {
	return s.byID[id]
}

// ListByCategory は主カテゴリ・サブカテゴリで絞り込んだ商品一覧を返す。
// mainが"All"または空の場合は全商品、subが"All"または空の場合はサブカテゴリで絞り込まない。
func (s *Service) ListByCategory(main, sub string) []model.Product {
	results := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if main != "" && main != "All" && p.MainCategory != main {
			continue
		}
		if sub != "" && sub != "All" && p.SubCategory != sub {
			continue
		}
		results = append(results, p)
	}
	return results
}

// Search は商品名・説明・サブカテゴリに対する部分一致検索を行う。
// 大文字小文字は区別しない。空クエリには空の結果を返す。
func (s *Service) Search(query string) []model.Product {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	results := make([]model.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.SubCategory), query) {
			results = append(results, p)
		}
	}
	return results
}
