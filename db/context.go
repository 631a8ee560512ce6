package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const dbKey = "db"

// SetDBtoContext shares one *gorm.DB with every request. Handlers wrap it in
// a fresh Store per request with StoreInstance.
func SetDBtoContext(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, database)
		c.Next()
	}
}

func DBInstance(c *gin.Context) *gorm.DB {
	v, ok := c.Get(dbKey)
	if !ok {
		return nil
	}
	db, _ := v.(*gorm.DB)
	return db
}

// StoreInstance returns a request scoped Store, or nil when no database was
// placed in the context.
func StoreInstance(c *gin.Context) *Store {
	database := DBInstance(c)
	if database == nil {
		return nil
	}
	return NewStore(database)
}
