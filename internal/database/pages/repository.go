// Package pages provides database operations for migrated pages.
//
// Repository implements the wordpress.PageStore interface:
//
//	var _ wordpress.PageStore = (*Repository)(nil)
package pages

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/contentbridge/wpimport/internal/entities"
	"github.com/contentbridge/wpimport/internal/wordpress"
)

var _ wordpress.PageStore = (*Repository)(nil)

// Repository handles page persistence and tree insertion.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByPostID returns the page carrying the source identity, or
// (nil, nil) when none exists yet.
func (r *Repository) FindByPostID(postID int) (*entities.Page, error) {
	var page entities.Page
	err := r.db.Where("wp_post_id = ?", postID).First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ParentExists reports whether a page with the given id exists.
func (r *Repository) ParentExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Page{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// AddChild attaches a new page under the parent, materializing its path
// and depth, and persists it in one transaction.
func (r *Repository) AddChild(parentID uint, page *entities.Page) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var parent entities.Page
		if err := tx.First(&parent, parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("parent page %d does not exist", parentID)
			}
			return err
		}

		page.ParentID = parent.ID
		page.Depth = parent.Depth + 1
		page.Path = joinPath(parent.Path, page.Slug)

		return tx.Create(page).Error
	})
}

// Save persists every field of an existing page.
func (r *Repository) Save(page *entities.Page) error {
	return r.db.Save(page).Error
}

func (r *Repository) GetByID(id uint) (*entities.Page, error) {
	var page entities.Page
	err := r.db.First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetBySlug(slug string) (*entities.Page, error) {
	var page entities.Page
	err := r.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetChildren returns the direct children of a page in slug order.
func (r *Repository) GetChildren(parentID uint) ([]entities.Page, error) {
	var pages []entities.Page
	err := r.db.Where("parent_id = ?", parentID).Order("slug ASC").Find(&pages).Error
	return pages, err
}

// CountPages returns the number of pages below the root.
func (r *Repository) CountPages() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Page{}).Where("depth > 0").Count(&count).Error
	return count, err
}

func joinPath(parentPath, slug string) string {
	return strings.TrimRight(parentPath, "/") + "/" + slug
}
