package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// PageParams holds offset/limit paging query parameters.
type PageParams struct {
	From int `form:"from,default=0" binding:"omitempty,min=0"`
	Size int `form:"size,default=10" binding:"omitempty,min=1,max=100"`
}
