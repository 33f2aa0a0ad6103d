package dto

// UploadResponse 上传成功响应
type UploadResponse struct {
	Message  string `json:"message" example:"Image uploadée avec succès"`
	URL      string `json:"url" example:"http://localhost:4443/book-covers/0b6f3c1e-5a8d-4a53-9e43-2f1f7f2d6c1a.png"`
	FileName string `json:"fileName" example:"0b6f3c1e-5a8d-4a53-9e43-2f1f7f2d6c1a.png"`
}
