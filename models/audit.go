package models

// Audit stamp setters used by the generic master handlers.

func (e *Employee) SetCreatedBy(userID int) { e.CreatedBy = userID }
func (e *Employee) SetUpdatedBy(userID int) { e.UpdatedBy = userID }

func (r *Role) SetCreatedBy(userID int) { r.CreatedBy = userID }
func (r *Role) SetUpdatedBy(userID int) { r.UpdatedBy = userID }

func (d *Department) SetCreatedBy(userID int) { d.CreatedBy = userID }
func (d *Department) SetUpdatedBy(userID int) { d.UpdatedBy = userID }

func (c *Customer) SetCreatedBy(userID int) { c.CreatedBy = userID }
func (c *Customer) SetUpdatedBy(userID int) { c.UpdatedBy = userID }

func (p *Product) SetCreatedBy(userID int) { p.CreatedBy = userID }
func (p *Product) SetUpdatedBy(userID int) { p.UpdatedBy = userID }

func (s *SparePart) SetCreatedBy(userID int) { s.CreatedBy = userID }
func (s *SparePart) SetUpdatedBy(userID int) { s.UpdatedBy = userID }

func (w *WorkflowStep) SetCreatedBy(userID int) { w.CreatedBy = userID }
func (w *WorkflowStep) SetUpdatedBy(userID int) { w.UpdatedBy = userID }

func (t *Ticket) SetCreatedBy(userID int) { t.CreatedBy = userID }
func (t *Ticket) SetUpdatedBy(userID int) { t.UpdatedBy = userID }
