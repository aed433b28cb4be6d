package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/lisahub/agent-hub-be/internal/core/webhook"
	"github.com/lisahub/agent-hub-be/internal/models"
)

// Products returns the agent's catalog ordered as stored
func (s *AgentService) Products(agentID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.AgentID == agentID {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct appends a catalog entry at the end of the agent's ordering and
// increments the owning agent's ProductCount.
func (s *AgentService) AddProduct(req *models.CreateProductRequest) models.Product {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	s.mu.Lock()
	product := models.Product{
		ID:          uuid.NewString(),
		AgentID:     req.AgentID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		SKU:         req.SKU,
		Stock:       req.Stock,
		Variants:    req.Variants,
		IsActive:    active,
		SortOrder:   s.nextProductOrderLocked(req.AgentID),
	}
	s.products = append(s.products, product)
	s.adjustProductCountLocked(req.AgentID, 1)
	s.mu.Unlock()

	s.notify(webhook.EventProductCreated, map[string]interface{}{"product": product})
	return product
}

// UpdateProduct merges the partial update into the matching product
func (s *AgentService) UpdateProduct(id string, req *models.UpdateProductRequest) (models.Product, bool) {
	s.mu.Lock()
	var updated models.Product
	found := false
	for i := range s.products {
		if s.products[i].ID == id {
			if req.Name != nil {
				s.products[i].Name = *req.Name
			}
			if req.Description != nil {
				s.products[i].Description = *req.Description
			}
			if req.Price != nil {
				s.products[i].Price = *req.Price
			}
			if req.Category != nil {
				s.products[i].Category = *req.Category
			}
			if req.ImageURL != nil {
				s.products[i].ImageURL = *req.ImageURL
			}
			if req.SKU != nil {
				s.products[i].SKU = *req.SKU
			}
			if req.Stock != nil {
				s.products[i].Stock = req.Stock
			}
			if req.Variants != nil {
				s.products[i].Variants = *req.Variants
			}
			if req.IsActive != nil {
				s.products[i].IsActive = *req.IsActive
			}
			updated = s.products[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Product{}, false
	}
	s.notify(webhook.EventProductUpdated, map[string]interface{}{"product": updated})
	return updated, true
}

// DeleteProduct removes the product and decrements the owning agent's
// ProductCount.
func (s *AgentService) DeleteProduct(id string) bool {
	s.mu.Lock()
	var deleted models.Product
	found := false
	for i := range s.products {
		if s.products[i].ID == id {
			deleted = s.products[i]
			s.products = append(s.products[:i], s.products[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.adjustProductCountLocked(deleted.AgentID, -1)
	}
	s.mu.Unlock()

	if !found {
		return false
	}
	s.notify(webhook.EventProductDeleted, map[string]interface{}{"product": deleted})
	return true
}

// ImportProducts bulk-inserts catalog rows from an external source. Every row
// gets a fresh id and lands after the agent's current highest order.
func (s *AgentService) ImportProducts(req *models.ImportProductsRequest) []models.Product {
	s.mu.Lock()
	imported := make([]models.Product, 0, len(req.Items))
	for _, item := range req.Items {
		product := models.Product{
			ID:          uuid.NewString(),
			AgentID:     req.AgentID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			SKU:         item.SKU,
			Stock:       item.Stock,
			Variants:    item.Variants,
			IsActive:    item.IsActive,
			SortOrder:   s.nextProductOrderLocked(req.AgentID),
		}
		s.products = append(s.products, product)
		imported = append(imported, product)
	}
	s.adjustProductCountLocked(req.AgentID, len(imported))
	s.mu.Unlock()

	s.notify(webhook.EventProductImported, map[string]interface{}{
		"agent_id": req.AgentID,
		"source":   req.Source,
		"count":    len(imported),
	})
	return imported
}

// nextProductOrderLocked scans the agent's catalog for the highest sort
// order. Caller must hold the write lock.
func (s *AgentService) nextProductOrderLocked(agentID string) int {
	max := 0
	for _, p := range s.products {
		if p.AgentID == agentID && p.SortOrder > max {
			max = p.SortOrder
		}
	}
	return max + 1
}

// adjustProductCountLocked shifts the agent's ProductCount, flooring at zero.
// Caller must hold the write lock.
func (s *AgentService) adjustProductCountLocked(agentID string, delta int) {
	for i := range s.agents {
		if s.agents[i].ID == agentID {
			s.agents[i].ProductCount += delta
			if s.agents[i].ProductCount < 0 {
				s.agents[i].ProductCount = 0
			}
			s.agents[i].UpdatedAt = time.Now().UTC()
			return
		}
	}
}
