package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/utils"
)

// UploadController stores uploaded assets and returns their served path
type UploadController struct {
	Assets *utils.AssetStore
}

// Upload accepts a multipart file field named "file"
func (uc *UploadController) Upload(c *gin.Context) {
	utils.LogInfo("Upload called")
	file, err := c.FormFile("file")
	if err != nil {
		utils.LogError("Upload without file field: %v", err)
		utils.BadRequest(c, "No file uploaded.")
		return
	}

	path, err := uc.Assets.SaveUploadedFile(file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.LogInfo("Stored upload %s as %s", file.Filename, path)
	utils.OK(c, gin.H{
		"path":         path,
		"mimeType":     file.Header.Get("Content-Type"),
		"originalName": file.Filename,
	})
}
